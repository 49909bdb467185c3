package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codecamp/config"
	"codecamp/internal/adapters/auth"
	delivery "codecamp/internal/delivery/http"
	"codecamp/internal/delivery/http/controllers"
	"codecamp/internal/repository/postgres"
	"codecamp/internal/services"

	_ "codecamp/docs"

	_ "github.com/lib/pq"
)

// @title			Code Camp API
// @version		1.0
// @description	Events, rooms and speaker profiles for a Code Camp module.
// @BasePath		/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	logger.Info("starting codecamp api", "env", cfg.Environment, "port", cfg.Port)

	if cfg.MigrateOnStart {
		if err := postgres.MigrateUp(cfg.DBUrl, cfg.MigrationsPath); err != nil {
			logger.Error("migrations failed", "err", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)

	eventRepo := postgres.NewCodeCampRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	speakerRepo := postgres.NewSpeakerInfoRepository(db)

	eventService := services.NewCodeCampService(eventRepo, cfg.RequestTimeout)
	roomService := services.NewRoomService(eventRepo, roomRepo, cfg.RequestTimeout)
	speakerService := services.NewSpeakerInfoService(eventRepo, speakerRepo, cfg.RequestTimeout)

	router := delivery.NewRouter(
		delivery.RouterConfig{
			CSRFAuthKey:        []byte(cfg.CSRFAuthKey),
			CSRFSecure:         cfg.CSRFSecure,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			DefaultTimeZone:    cfg.DefaultTimeZone,
		},
		logger,
		auth.NewJWTVerifier(cfg.JWTSecret, cfg.AdminRoleName),
		db,
		controllers.NewEventController(logger, eventService),
		controllers.NewRoomController(logger, roomService),
		controllers.NewSpeakerController(logger, speakerService),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
			os.Exit(1)
		}
	}()

	shutdown(server, logger)
}

func shutdown(server *http.Server, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
