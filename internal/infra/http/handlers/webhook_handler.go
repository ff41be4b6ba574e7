package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/smartlead-sync/internal/infra/http/middleware"
	"github.com/xavierca1/smartlead-sync/internal/usecase"
)

type WebhookHandler struct {
	UpdateStatusUC *usecase.UpdateLeadStatusUseCase
}

func NewWebhookHandler(uc *usecase.UpdateLeadStatusUseCase) *WebhookHandler {
	return &WebhookHandler{UpdateStatusUC: uc}
}

// Handle processa o callback de status do Smartlead. Payload sem lead_id
// ou status é erro do caller (400); falha no banco é 500. Sem retry.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var event struct {
		LeadID string `json:"lead_id"`
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		middleware.RecordWebhookEvent("invalid")
		respondError(w, http.StatusBadRequest, ErrValidation, "JSON inválido: "+err.Error())
		return
	}

	_, err := h.UpdateStatusUC.Execute(r.Context(), event.LeadID, event.Status)
	if err != nil {
		if usecase.IsDomainError(err) {
			middleware.RecordWebhookEvent("invalid")
			respondError(w, http.StatusBadRequest, ErrValidation, err.Error())
			return
		}

		log.Printf("❌ Erro ao processar webhook: %v", err)
		middleware.RecordWebhookEvent("failed")
		respondError(w, http.StatusInternalServerError, errorCategory(err), "Webhook processing failed: "+err.Error())
		return
	}

	middleware.RecordWebhookEvent("success")
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
