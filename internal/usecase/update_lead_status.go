package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/smartlead-sync/internal/entity"
	"github.com/xavierca1/smartlead-sync/internal/infra/queue"
)

// UpdateLeadStatusUseCase processa o webhook de status do Smartlead.
// O Postgres é a fonte de verdade do status depois da criação.
type UpdateLeadStatusUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events EventProducerInterface
}

func NewUpdateLeadStatusUseCase(
	repo entity.LeadRepositoryInterface,
	events EventProducerInterface,
) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{
		Repo:   repo,
		Events: events,
	}
}

func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, leadID, status string) (*entity.Lead, error) {
	if strings.TrimSpace(leadID) == "" || strings.TrimSpace(status) == "" {
		return nil, &DomainError{
			Code:    "INVALID_WEBHOOK",
			Message: "Invalid webhook payload",
		}
	}

	lead, err := uc.Repo.UpdateLeadStatus(ctx, leadID, status)
	if err != nil {
		return nil, &StoreError{
			Code:    "UPDATE_FAILED",
			Message: "failed to update lead status: " + err.Error(),
		}
	}

	log.Printf("✅ Lead %s atualizado com status: %s", leadID, status)

	if uc.Events != nil {
		campaignID, email := "", ""
		if lead != nil {
			campaignID, email = lead.CampaignID, lead.Email
		}
		go func() {
			err := uc.Events.PublishLeadEvent(context.Background(), queue.NewLeadEvent(
				queue.EventLeadStatusChanged, leadID, campaignID, email, status,
			))
			if err != nil {
				log.Printf("⚠️ Erro fila (lead.status_changed): %v", err)
			}
		}()
	}

	return lead, nil
}
