package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/xavierca1/smartlead-sync/internal/entity"
	"github.com/xavierca1/smartlead-sync/internal/infra/queue"
)

type AddLeadsUseCase struct {
	Gateway PlatformGateway
	Repo    entity.LeadRepositoryInterface
	Events  EventProducerInterface
}

func NewAddLeadsUseCase(
	gateway PlatformGateway,
	repo entity.LeadRepositoryInterface,
	events EventProducerInterface,
) *AddLeadsUseCase {
	return &AddLeadsUseCase{
		Gateway: gateway,
		Repo:    repo,
		Events:  events,
	}
}

// Execute empurra o lote inteiro pro Smartlead e depois espelha cada lead
// no Postgres, um insert por vez, na ordem de entrada.
//
// Dual-write sem transação: se o Smartlead falhar, nada é gravado local;
// se o insert k falhar, os k-1 anteriores ficam gravados e o lote inteiro
// já foi aceito pela plataforma. Não há rollback.
func (uc *AddLeadsUseCase) Execute(ctx context.Context, campaignID string, inputs []LeadInput) ([]*entity.Lead, error) {
	if strings.TrimSpace(campaignID) == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "campaign_id is required",
		}
	}

	var validationErrors []ValidationError
	for i, input := range inputs {
		for _, e := range ValidateLeadInput(input) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   "leads[" + strconv.Itoa(i) + "]." + e.Field,
				Message: e.Message,
			})
		}
	}
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: strings.TrimSuffix(errMsg, ", "),
		}
	}

	payload := make([]map[string]any, 0, len(inputs))
	for _, input := range inputs {
		payload = append(payload, input.ToMap())
	}

	// Plataforma primeiro. Erro aqui aborta tudo antes de qualquer insert.
	if _, err := uc.Gateway.AddLeads(ctx, campaignID, payload); err != nil {
		return nil, err
	}

	stored := make([]*entity.Lead, 0, len(inputs))
	for _, input := range inputs {
		lead, err := uc.Repo.InsertLead(ctx, input.ToEntity(campaignID))
		if err != nil {
			return nil, &StoreError{
				Code:    "INSERT_FAILED",
				Message: "failed to insert lead: " + err.Error(),
			}
		}
		stored = append(stored, lead)
	}

	if uc.Events != nil {
		captured := make([]*entity.Lead, len(stored))
		copy(captured, stored)
		go func() {
			for _, lead := range captured {
				err := uc.Events.PublishLeadEvent(context.Background(), queue.NewLeadEvent(
					queue.EventLeadCaptured, lead.ID, lead.CampaignID, lead.Email, lead.Status,
				))
				if err != nil {
					log.Printf("⚠️ Erro fila (lead.captured): %v", err)
				}
			}
		}()
	}

	return stored, nil
}
