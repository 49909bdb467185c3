package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"codecamp/internal/domain"
)

// Error codes carried in ServiceError.Code.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeForbidden     = "forbidden"
	ErrCodeNoneFound     = "none_found"
	ErrCodeInvalidInput  = "invalid_input"
	ErrCodeInternalError = "internal_error"
)

// InternalErrorMessage is the only message a client sees for a store failure.
const InternalErrorMessage = "an internal error occurred"

// ServiceError is one entry of the Errors list in the response envelope.
// swagger:model ServiceError
type ServiceError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

// ServiceResponse is the envelope for every API response. Errors is never null.
// swagger:model ServiceResponse
type ServiceResponse struct {
	Content any            `json:"Content"`
	Errors  []ServiceError `json:"Errors"`
}

// WriteJSON writes resp with statusCode, replacing a nil Errors list with an empty one.
func WriteJSON(w http.ResponseWriter, statusCode int, resp ServiceResponse) {
	if resp.Errors == nil {
		resp.Errors = []ServiceError{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteContent writes a 200 envelope carrying content and no errors.
func WriteContent(w http.ResponseWriter, content any) {
	WriteJSON(w, http.StatusOK, ServiceResponse{Content: content})
}

// WriteError writes an envelope with null Content and a single error entry.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, ServiceResponse{Errors: []ServiceError{{Code: code, Message: message}}})
}

// WriteNoneFound writes the logical "none found" outcome for entity. The status stays 200.
func WriteNoneFound(w http.ResponseWriter, entity string) {
	WriteError(w, http.StatusOK, ErrCodeNoneFound, (&domain.NotFoundError{Entity: entity}).Error())
}

// WriteInvalidInput writes one invalid_input entry per message with status 200.
func WriteInvalidInput(w http.ResponseWriter, messages []string) {
	errs := make([]ServiceError, 0, len(messages))
	for _, m := range messages {
		errs = append(errs, ServiceError{Code: ErrCodeInvalidInput, Message: m})
	}
	WriteJSON(w, http.StatusOK, ServiceResponse{Errors: errs})
}

// WriteForbidden writes a 403 envelope.
func WriteForbidden(w http.ResponseWriter) {
	WriteError(w, http.StatusForbidden, ErrCodeForbidden, "you are not allowed to perform this action")
}

// WriteServiceError maps a service error onto the envelope. Unknown errors are logged and
// answered with a fixed 500 message so store details never reach the client.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var nf *domain.NotFoundError
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &nf):
		WriteNoneFound(w, nf.Entity)
	case errors.As(err, &ve):
		WriteInvalidInput(w, ve.Messages)
	case errors.Is(err, domain.ErrForbidden):
		WriteForbidden(w)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteError(w, http.StatusInternalServerError, ErrCodeInternalError, InternalErrorMessage)
	}
}

// Content strings returned by mutations and the edit probe.
const (
	ContentSuccess = "success"
	ContentFailure = "failure"
)
