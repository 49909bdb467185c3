package middleware

import (
	"net/http"
	"net/url"

	h "codecamp/internal/delivery/http/helpers"

	"github.com/gorilla/csrf"
)

// CSRFHeader is the request header the SPA echoes the token in.
const CSRFHeader = "X-CSRF-Token"

// CSRFProtection validates the double-submit token on unsafe methods. When secure is false
// (local development over plain HTTP) requests are marked plaintext so the Referer check
// that only makes sense under TLS is skipped. allowedOrigins are the CORS origins of the SPA;
// mutations carrying one of them in Origin are accepted alongside same-origin requests.
func CSRFProtection(authKey []byte, secure bool, allowedOrigins []string) func(http.Handler) http.Handler {
	protect := csrf.Protect(authKey,
		csrf.Secure(secure),
		csrf.TrustedOrigins(trustedHosts(allowedOrigins)),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.RequestHeader(CSRFHeader),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)
	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if secure {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

// trustedHosts turns origins such as "https://spa.example.com:8443" into the host[:port]
// form gorilla/csrf compares Origin headers against. The "*" wildcard is never trusted.
func trustedHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		if o == "" || o == "*" {
			continue
		}
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}
		hosts = append(hosts, o)
	}
	return hosts
}

func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	h.WriteError(w, http.StatusForbidden, h.ErrCodeForbidden, "CSRF token validation failed")
}

// CSRFToken returns the masked token for the current request. The request must have passed
// through CSRFProtection.
func CSRFToken(r *http.Request) string {
	return csrf.Token(r)
}
