package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/smartlead-sync/internal/entity"
	"github.com/xavierca1/smartlead-sync/internal/usecase"
)

func analyticsRouter(repo *MockLeadRepository) *chi.Mux {
	handler := NewAnalyticsHandler(usecase.NewCampaignAnalyticsUseCase(repo))
	r := chi.NewRouter()
	r.Get("/api/v1/campaigns/{campaignID}/analytics", handler.Handle)
	return r
}

func TestAnalyticsHandlerReturnsPerformance(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("GetLeadsForCampaign", mock.Anything, "camp-1").Return([]entity.Lead{
		{Status: "won", CreatedAt: time.Now()},
		{Status: "new", CreatedAt: time.Now()},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/campaigns/camp-1/analytics", nil)
	w := httptest.NewRecorder()
	analyticsRouter(mockRepo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var perf usecase.CampaignPerformance
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &perf))
	assert.Equal(t, "camp-1", perf.CampaignID)
	assert.Equal(t, 2, perf.TotalLeads)
	assert.Equal(t, 50.0, perf.ConversionRate)
}

func TestAnalyticsHandlerInvalidDays(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	req := httptest.NewRequest("GET", "/api/v1/campaigns/camp-1/analytics?days=abc", nil)
	w := httptest.NewRecorder()
	analyticsRouter(mockRepo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "GetLeadsForCampaign", mock.Anything, mock.Anything)
}

func TestAnalyticsHandlerNonPositiveDaysUsesDefaultWindow(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("GetLeadsForCampaign", mock.Anything, "camp-1").Return([]entity.Lead{
		{Status: "new", CreatedAt: time.Now()},
		{Status: "new", CreatedAt: time.Now().AddDate(0, 0, -40)},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/campaigns/camp-1/analytics?days=-3", nil)
	w := httptest.NewRecorder()
	analyticsRouter(mockRepo).ServeHTTP(w, req)

	// days<=0 não é erro de request: o use case assume a janela padrão de 30.
	assert.Equal(t, http.StatusOK, w.Code)

	var perf usecase.CampaignPerformance
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &perf))
	assert.Equal(t, 2, perf.TotalLeads)
	assert.Equal(t, 1, perf.LeadsInLast30Days)
}

func TestAnalyticsHandlerStoreFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("GetLeadsForCampaign", mock.Anything, "camp-1").
		Return(nil, errors.New("timeout"))

	req := httptest.NewRequest("GET", "/api/v1/campaigns/camp-1/analytics", nil)
	w := httptest.NewRecorder()
	analyticsRouter(mockRepo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrDatabase, resp.Error)
}
