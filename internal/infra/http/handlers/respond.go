package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/smartlead-sync/internal/infra/integration/smartlead"
	"github.com/xavierca1/smartlead-sync/internal/usecase"
)

// Categorias do corpo de erro {error, details}
const (
	ErrSmartlead  = "Smartlead API Error"
	ErrDatabase   = "Database Error"
	ErrValidation = "Validation Error"
	ErrInternal   = "Internal Server Error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, category, details string) {
	writeJSON(w, status, ErrorResponse{Error: category, Details: details})
}

// errorCategory classifica o erro na taxonomia de três categorias.
func errorCategory(err error) string {
	var apiErr *smartlead.APIError
	if errors.As(err, &apiErr) {
		return ErrSmartlead
	}
	if usecase.IsStoreError(err) {
		return ErrDatabase
	}
	if usecase.IsDomainError(err) {
		return ErrValidation
	}
	return ErrInternal
}
