package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"explorewithme/internal/domain"
)

// Error codes carried in APIError.Code.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeForbidden     = "forbidden"
	ErrCodeNotFound      = "not_found"
	ErrCodeConflict      = "conflict"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error half of the response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope every handler writes. Exactly one of Data and Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// errorCategory ties a domain error category to its HTTP status and code.
type errorCategory struct {
	err    error
	status int
	code   string
}

// Checked in order; the first category the error wraps wins.
var errorCategories = []errorCategory{
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrConflict, http.StatusConflict, ErrCodeConflict},
	{domain.ErrValidation, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrForbidden, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrUnauthorized, http.StatusUnauthorized, ErrCodeUnauthorized},
}

func writeEnvelope(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONSuccess writes data in the envelope with status.
func WriteJSONSuccess(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, APIResponse{Data: data})
}

// WriteJSONError writes an error envelope with status, code and message.
func WriteJSONError(w http.ResponseWriter, status int, code, message string) {
	writeEnvelope(w, status, APIResponse{Error: &APIError{Code: code, Message: message}})
}

// WriteServiceError writes the error envelope for an error returned by a service.
// Domain categories map to 4xx with the error text as message; anything else is
// logged and reported as a 500 without details.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, c := range errorCategories {
		if errors.Is(err, c.err) {
			WriteJSONError(w, c.status, c.code, err.Error())
			return
		}
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}
