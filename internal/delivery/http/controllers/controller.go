package controllers

import (
	"net/http"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/delivery/http/middleware"
	"codecamp/internal/domain"
	"codecamp/internal/metrics"
)

// SuccessResponse is the envelope returned by update and delete endpoints.
type SuccessResponse struct {
	Content string                 `json:"Content" example:"success"`
	Errors  []helpers.ServiceError `json:"Errors"`
}

// deny rejects a mutation before any store write: 401 for anonymous callers, 403 otherwise.
func deny(w http.ResponseWriter, caller domain.Caller, entity string) {
	metrics.AuthorizationDenials.WithLabelValues(entity).Inc()
	if !caller.IsAuthenticated() {
		helpers.WriteError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
		return
	}
	helpers.WriteForbidden(w)
}

// moduleScope returns the module id set by middleware.ModuleScope, writing a 400 when the
// route was mounted without it.
func moduleScope(w http.ResponseWriter, r *http.Request) (int, bool) {
	moduleID, ok := middleware.ModuleIDFromContext(r.Context())
	if !ok {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing module scope")
		return 0, false
	}
	return moduleID, true
}
