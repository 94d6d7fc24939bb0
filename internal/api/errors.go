package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/wallet-wrapped/internal/errors"
	"github.com/wallet-wrapped/internal/types"
)

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error types.ServiceError `json:"error"`
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, statusCode int, code, message string, details map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error: types.ServiceError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}

	json.NewEncoder(w).Encode(response)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Common error codes
const (
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeUpstreamError      = "UPSTREAM_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// respondServiceError maps a service error to an HTTP response. Provider
// failures surface as 502 so callers can tell an upstream outage from a
// bug; everything uncategorized collapses to a generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var catErr *errors.CategorizedError
	if stderrors.As(err, &catErr) {
		switch catErr.Category {
		case errors.CategoryUserInput:
			respondError(w, catErr.StatusCode, catErr.Code, catErr.Message, catErr.Details)
		case errors.CategoryNotFound:
			respondError(w, http.StatusNotFound, ErrCodeNotFound, catErr.Message, catErr.Details)
		case errors.CategoryProvider:
			respondError(w, http.StatusBadGateway, ErrCodeUpstreamError, catErr.Message, catErr.Details)
		default:
			respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "An internal error occurred", nil)
		}
		return
	}

	respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "An internal error occurred", nil)
}
