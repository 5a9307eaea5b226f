// Package main is the entry point for the Aina API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/aina-travel/backend/internal/catalog"
	"github.com/aina-travel/backend/internal/config"
	"github.com/aina-travel/backend/internal/handler"
	"github.com/aina-travel/backend/internal/middleware"
	"github.com/aina-travel/backend/internal/service"
	"github.com/aina-travel/backend/internal/session"
	"github.com/aina-travel/backend/internal/store"
)

// maxBodySize caps request bodies at 1 MiB. The largest legitimate payload
// is a preferences document, which is a few hundred bytes.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// Badger is an embedded KV store; the whole session lives under a single
	// key so there is no external database to manage.
	sessionStore, err := store.Open(cfg.DataDir, logger)
	if err != nil {
		slog.Error("failed to open session store", "error", err, "dir", cfg.DataDir)
		os.Exit(1)
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			slog.Error("failed to close session store", "error", err)
		}
	}()

	state, err := sessionStore.Load(context.Background())
	if err != nil {
		slog.Error("failed to load session state", "error", err)
		os.Exit(1)
	}
	slog.Info("session state loaded",
		"saved", len(state.Library),
		"trips", len(state.Trips),
		"onboarded", state.Prefs != nil,
	)

	sess := session.New(state, sessionStore, logger)

	// --- Catalog ----------------------------------------------------------
	feed, err := catalog.Load()
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	importSource, err := catalog.LoadImportSource()
	if err != nil {
		slog.Error("failed to load import source", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	trips := service.NewTripService(sess)
	swipes := service.NewSwipeService(feed, trips, sess, logger)
	library := service.NewLibraryService(sess)
	prefs := service.NewPreferenceService(sess)
	imports := service.NewImportService(importSource, trips, sess, cfg.ImportDelay, logger)
	exports := service.NewExportService(sess)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	srv := handler.NewServer(feed, swipes, trips, library, prefs, imports, exports)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
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
