package usecase

import (
	"context"

	"github.com/xavierca1/smartlead-sync/internal/infra/queue"
)

// PlatformGateway é o contrato com a plataforma de outreach (Smartlead).
type PlatformGateway interface {
	CreateCampaign(ctx context.Context, campaignData map[string]any) (map[string]any, error)
	AddLeads(ctx context.Context, campaignID string, leads []map[string]any) (map[string]any, error)
}

type EventProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
