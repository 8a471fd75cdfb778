// Package main is the entry point for the Travel Planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pressly/goose/v3"

	"github.com/jeevamp6/travel-planner/internal/auth"
	"github.com/jeevamp6/travel-planner/internal/config"
	"github.com/jeevamp6/travel-planner/internal/handler"
	"github.com/jeevamp6/travel-planner/internal/middleware"
	"github.com/jeevamp6/travel-planner/internal/repo"
	"github.com/jeevamp6/travel-planner/internal/service"
	"github.com/jeevamp6/travel-planner/internal/store"
	"github.com/jeevamp6/travel-planner/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	provider, err := goose.NewProvider(goose.DialectSQLite3, st.DB(), migrations.FS)
	if err != nil {
		slog.Error("failed to create migration provider", "error", err)
		os.Exit(1)
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("store ready", "path", cfg.DBPath, "migrations_applied", len(results))

	// --- Auth -------------------------------------------------------------
	tokens, err := auth.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		slog.Error("invalid JWT secret", "error", err)
		os.Exit(1)
	}
	hasher := auth.NewPasswordHasher()

	// --- Repos and services -----------------------------------------------
	users := repo.NewUserRepo(st)
	trips := repo.NewTripRepo(st)
	stops := repo.NewStopRepo(st)
	activities := repo.NewActivityRepo(st)
	expenses := repo.NewExpenseRepo(st)

	srv := handler.NewServer(
		service.NewAuthService(users, hasher, tokens),
		service.NewTripService(trips, activities),
		service.NewStopService(trips, stops),
		service.NewActivityService(trips, stops, activities),
		service.NewExpenseService(trips, expenses),
		service.NewBookingService(trips, expenses),
		service.NewStatsService(trips, stops, activities, expenses),
		service.NewExportService(trips, stops, activities),
		tokens,
	)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS →
	// MaxBodySize. The logger needs the request ID; Recoverer turns panics
	// into 500s before CORS headers are attached.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORS(cfg.CORSOrigins))
	r.Use(middleware.MaxBodySize(cfg.MaxBodyBytes))

	srv.Routes(r)

	// --- HTTP server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for an OS signal, then give in-flight
	// requests up to 15 seconds to complete.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
