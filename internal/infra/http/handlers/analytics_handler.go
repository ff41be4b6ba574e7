package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/smartlead-sync/internal/usecase"
)

type AnalyticsHandler struct {
	AnalyticsUC *usecase.CampaignAnalyticsUseCase
}

func NewAnalyticsHandler(uc *usecase.CampaignAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{AnalyticsUC: uc}
}

// Handle devolve as métricas agregadas da campanha. O default da janela
// (30 dias) é dono do use case; aqui só se rejeita days não numérico.
func (h *AnalyticsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrValidation, "days must be an integer")
			return
		}
		days = parsed
	}

	performance, err := h.AnalyticsUC.Execute(r.Context(), campaignID, days)
	if err != nil {
		log.Printf("❌ Erro nas métricas da campanha %s: %v", campaignID, err)
		respondError(w, http.StatusInternalServerError, errorCategory(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, performance)
}
