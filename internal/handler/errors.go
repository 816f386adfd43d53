package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rolodex-crm/backend/internal/domain"
)

// Error codes returned in ErrorResponse.Error.Code.
const (
	codeNotFound      = "not_found"
	codeValidation    = "validation_error"
	codeTooLarge      = "payload_too_large"
	codeInternalError = "internal_error"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// notFound writes a 404. The caller supplies the message (e.g. "contact not found")
// because the handler is the layer that knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, codeNotFound, message)
}

// badRequest writes a 422 for input rejected before reaching the service layer
// (malformed body, bad path or query parameter).
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, codeValidation, message)
}

// fail maps a service error to a response. ErrNotFound becomes 404 with
// notFoundMsg, ErrValidation becomes 422, anything else is logged and
// answered with an opaque 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFound(w, notFoundMsg)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, codeValidation, unwrapMessage(err))
	default:
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "validation error: first name is required" → "first name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 && len(msg) > i+len(prefix) {
		return msg[i+len(prefix):]
	}
	return msg
}
