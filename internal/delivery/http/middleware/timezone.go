package middleware

import (
	"net/http"
	"time"
)

// TimeZoneHeader lets a client name its IANA time zone when the token carries none.
const TimeZoneHeader = "X-Time-Zone"

// TimeZone fills in the caller's Location. A zone already set from the token wins, then a
// loadable X-Time-Zone header, then def. Unknown zone names fall back silently.
func TimeZone(def *time.Location, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := CallerFromContext(r.Context())
		if caller.Location == nil {
			caller.Location = def
			if name := r.Header.Get(TimeZoneHeader); name != "" {
				if loc, err := time.LoadLocation(name); err == nil {
					caller.Location = loc
				}
			}
			r = r.WithContext(SetCaller(r.Context(), caller))
		}
		next.ServeHTTP(w, r)
	})
}
