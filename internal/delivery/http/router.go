package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"codecamp/internal/delivery/http/controllers"
	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/delivery/http/middleware"
	"codecamp/internal/domain"
	"codecamp/internal/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger is the health check's view of the database.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig carries the settings the middleware chain needs.
type RouterConfig struct {
	CSRFAuthKey        []byte
	CSRFSecure         bool
	CORSAllowedOrigins []string
	DefaultTimeZone    *time.Location
}

const healthTimeout = 2 * time.Second

// NewRouter wires every route and wraps the mux in the middleware chain:
// request id, logging, CORS, authentication, time zone, CSRF and metrics, outermost first.
func NewRouter(
	cfg RouterConfig,
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	db Pinger,
	events *controllers.EventController,
	rooms *controllers.RoomController,
	speakers *controllers.SpeakerController,
) http.Handler {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /api/events", middleware.ModuleScope(middleware.RequireView(events.ListEvents)))
	mux.HandleFunc("GET /api/events/current", middleware.ModuleScope(middleware.RequireView(events.GetCurrentEvent)))
	mux.HandleFunc("GET /api/events/{itemID}", middleware.ModuleScope(middleware.RequireView(events.GetEvent)))
	mux.HandleFunc("GET /api/events/{itemID}/can-edit", middleware.ModuleScope(events.CanEditEvent))
	mux.HandleFunc("POST /api/events", middleware.ModuleScope(events.CreateEvent))
	mux.HandleFunc("POST /api/events/{itemID}", middleware.ModuleScope(events.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{itemID}", middleware.ModuleScope(events.DeleteEvent))

	// Rooms
	mux.HandleFunc("GET /api/events/{codeCampID}/rooms", rooms.ListRooms)
	mux.HandleFunc("GET /api/events/{codeCampID}/rooms/{itemID}", rooms.GetRoom)
	mux.HandleFunc("POST /api/events/{codeCampID}/rooms", middleware.ModuleScope(middleware.RequireModuleEdit(rooms.CreateRoom)))
	mux.HandleFunc("POST /api/events/{codeCampID}/rooms/{itemID}", middleware.ModuleScope(middleware.RequireModuleEdit(rooms.UpdateRoom)))
	mux.HandleFunc("DELETE /api/events/{codeCampID}/rooms/{itemID}", middleware.ModuleScope(middleware.RequireModuleEdit(rooms.DeleteRoom)))

	// Speakers
	mux.HandleFunc("GET /api/events/{codeCampID}/speakers", speakers.ListSpeakers)
	mux.HandleFunc("GET /api/events/{codeCampID}/speakers/{itemID}", speakers.GetSpeaker)
	mux.HandleFunc("GET /api/events/{codeCampID}/registrations/{registrationID}/speaker", speakers.GetSpeakerByRegistration)
	mux.HandleFunc("POST /api/events/{codeCampID}/speakers", middleware.ModuleScope(middleware.RequireAuthenticated(speakers.CreateSpeaker)))
	mux.HandleFunc("POST /api/events/{codeCampID}/speakers/{itemID}", middleware.ModuleScope(speakers.UpdateSpeaker))
	mux.HandleFunc("DELETE /api/events/{codeCampID}/speakers/{itemID}", middleware.ModuleScope(speakers.DeleteSpeaker))

	// Support
	mux.HandleFunc("GET /api/csrf-token", csrfToken)
	mux.HandleFunc("GET /healthz", health(logger, db))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = metrics.HTTPMiddleware(mux)
	h = middleware.CSRFProtection(cfg.CSRFAuthKey, cfg.CSRFSecure, cfg.CORSAllowedOrigins)(h)
	h = middleware.TimeZone(cfg.DefaultTimeZone, h)
	h = middleware.Authenticate(verifier, h)
	h = middleware.CORS(cfg.CORSAllowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return h
}

// csrfToken hands the SPA the token it must echo in X-CSRF-Token on mutations.
func csrfToken(w http.ResponseWriter, r *http.Request) {
	token := middleware.CSRFToken(r)
	w.Header().Set(middleware.CSRFHeader, token)
	helpers.WriteContent(w, token)
}

func health(logger *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.ErrorContext(r.Context(), "health check failed", "err", err)
			helpers.WriteError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unavailable")
			return
		}
		helpers.WriteContent(w, "ok")
	}
}
