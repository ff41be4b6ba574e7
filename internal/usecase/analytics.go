package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/smartlead-sync/internal/entity"
)

const DefaultAnalyticsWindowDays = 30

type CampaignAnalyticsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewCampaignAnalyticsUseCase(repo entity.LeadRepositoryInterface) *CampaignAnalyticsUseCase {
	return &CampaignAnalyticsUseCase{Repo: repo}
}

// Execute agrega as métricas da campanha a partir dos leads espelhados no
// Postgres. A janela é contada pra trás a partir de agora.
func (uc *CampaignAnalyticsUseCase) Execute(ctx context.Context, campaignID string, days int) (*CampaignPerformance, error) {
	if days <= 0 {
		days = DefaultAnalyticsWindowDays
	}

	leads, err := uc.Repo.GetLeadsForCampaign(ctx, campaignID)
	if err != nil {
		return nil, &StoreError{
			Code:    "ANALYTICS_FAILED",
			Message: "failed to retrieve campaign performance: " + err.Error(),
		}
	}

	cutoff := time.Now().AddDate(0, 0, -days)

	recent := 0
	distribution := map[string]int{}
	for _, lead := range leads {
		if !lead.CreatedAt.Before(cutoff) {
			recent++
		}
		status := lead.Status
		if status == "" {
			status = "unknown"
		}
		distribution[status]++
	}

	return &CampaignPerformance{
		CampaignID:         campaignID,
		TotalLeads:         len(leads),
		LeadsInLast30Days:  recent,
		StatusDistribution: distribution,
		ConversionRate:     conversionRate(leads),
	}, nil
}

func conversionRate(leads []entity.Lead) float64 {
	if len(leads) == 0 {
		return 0.0
	}

	converted := 0
	for _, lead := range leads {
		if entity.IsConversionStatus(lead.Status) {
			converted++
		}
	}

	return float64(converted) / float64(len(leads)) * 100
}
