package middleware

import (
	"net/http"
	"strings"

	h "codecamp/internal/delivery/http/helpers"
	"codecamp/internal/domain"
)

// Authenticate resolves the optional Bearer token into a Caller stored in the request context.
// Requests without an Authorization header continue as anonymous. A malformed header or a
// token the verifier rejects is answered with 401.
func Authenticate(verifier domain.TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			next.ServeHTTP(w, r.WithContext(SetCaller(r.Context(), domain.Anonymous())))
			return
		}
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			h.WriteError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
			return
		}
		token := strings.TrimSpace(auth[len(prefix):])
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
			return
		}
		caller, err := verifier.Verify(token)
		if err != nil {
			h.WriteError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(SetCaller(r.Context(), caller)))
	})
}

// RequireAuthenticated responds 401 unless the caller carries a user identity.
func RequireAuthenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !CallerFromContext(r.Context()).IsAuthenticated() {
			h.WriteError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
			return
		}
		next(w, r)
	}
}
