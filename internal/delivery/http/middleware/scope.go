package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"codecamp/internal/authz"
	h "codecamp/internal/delivery/http/helpers"
	"codecamp/internal/domain"
	"codecamp/internal/metrics"
)

// ModuleIDHeader carries the host module the request is scoped to.
const ModuleIDHeader = "X-Module-Id"

// ModuleScope requires a positive integer X-Module-Id header and stores it in the context.
func ModuleScope(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(ModuleIDHeader))
		if raw == "" {
			h.WriteError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing "+ModuleIDHeader+" header")
			return
		}
		moduleID, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || moduleID <= 0 {
			h.WriteError(w, http.StatusBadRequest, h.ErrCodeBadRequest, ModuleIDHeader+" must be a positive integer")
			return
		}
		next(w, r.WithContext(SetModuleID(r.Context(), int(moduleID))))
	}
}

// RequireView admits callers with view or edit rights on the module. It must run inside ModuleScope.
func RequireView(next http.HandlerFunc) http.HandlerFunc {
	return requireModule(authz.CanView, next)
}

// RequireModuleEdit admits callers with module-level edit rights. It must run inside ModuleScope.
func RequireModuleEdit(next http.HandlerFunc) http.HandlerFunc {
	return requireModule(authz.CanEditModule, next)
}

func requireModule(allowed func(domain.Caller, int) bool, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := CallerFromContext(r.Context())
		moduleID, _ := ModuleIDFromContext(r.Context())
		if allowed(caller, moduleID) {
			next(w, r)
			return
		}
		metrics.AuthorizationDenials.WithLabelValues("module").Inc()
		if !caller.IsAuthenticated() {
			h.WriteError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
			return
		}
		h.WriteForbidden(w)
	}
}
