package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/smartlead-sync/internal/infra/http/middleware"
	"github.com/xavierca1/smartlead-sync/internal/usecase"
)

type CampaignHandler struct {
	CreateCampaignUC *usecase.CreateCampaignUseCase
}

func NewCampaignHandler(uc *usecase.CreateCampaignUseCase) *CampaignHandler {
	return &CampaignHandler{CreateCampaignUC: uc}
}

// Handle repassa o JSON do caller pro Smartlead. Qualquer falha vira 400,
// com a categoria no corpo.
func (h *CampaignHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var campaignData map[string]any
	if err := json.NewDecoder(r.Body).Decode(&campaignData); err != nil {
		respondError(w, http.StatusBadRequest, ErrValidation, "JSON inválido: "+err.Error())
		return
	}

	output, err := h.CreateCampaignUC.Execute(r.Context(), campaignData)
	if err != nil {
		log.Printf("❌ Erro ao criar campanha: %v", err)
		middleware.RecordIntegrationError("smartlead")
		respondError(w, http.StatusBadRequest, errorCategory(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, output)
}
