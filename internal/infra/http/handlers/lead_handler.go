package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/smartlead-sync/internal/infra/http/middleware"
	"github.com/xavierca1/smartlead-sync/internal/usecase"
)

type LeadHandler struct {
	AddLeadsUC *usecase.AddLeadsUseCase
}

func NewLeadHandler(uc *usecase.AddLeadsUseCase) *LeadHandler {
	return &LeadHandler{AddLeadsUC: uc}
}

// Handle recebe o lote de leads pra campanha do query param campaign_id.
// Contrato da rota: qualquer falha responde 400 com {error, details}.
func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	campaignID := r.URL.Query().Get("campaign_id")

	var inputs []usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		respondError(w, http.StatusBadRequest, ErrValidation, "JSON inválido: "+err.Error())
		return
	}

	stored, err := h.AddLeadsUC.Execute(r.Context(), campaignID, inputs)
	if err != nil {
		log.Printf("❌ Erro ao adicionar leads na campanha %s: %v", campaignID, err)
		respondError(w, http.StatusBadRequest, errorCategory(err), err.Error())
		return
	}

	middleware.RecordLeadsCaptured(len(stored))
	writeJSON(w, http.StatusCreated, stored)
}
