// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

// Command server runs the programme guide search service: the HTTP API
// and the badger maintenance loop under a suture supervision tree.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/api"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/config"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/logging"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/search"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/store"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/supervisor"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config errors are reported through the default logger since
		// logging is not configured yet.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Float64("search_threshold", cfg.Search.Threshold).
		Msg("Starting DigiGuide")

	db, err := store.Open(store.Options{
		Path:       cfg.Store.Path,
		InMemory:   cfg.Store.InMemory,
		SyncWrites: cfg.Store.SyncWrites,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	savedStore := store.NewSavedSearchStore(db)
	historyStore := store.NewHistoryStore(db, logging.WithComponent("history"))

	engine := search.NewEngine(search.Config{
		Threshold:          cfg.Search.Threshold,
		FallbackMinResults: cfg.Search.FallbackMinResults,
		MaxFuzzyResults:    cfg.Search.MaxFuzzyResults,
	}, logging.WithComponent("search"))
	engine.SetHistoryRecorder(historyStore)

	handler := api.NewHandler(engine, savedStore, historyStore)
	router := api.NewRouter(handler, api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		RateLimitRequests:  cfg.Server.RateLimitReqs,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
		RateLimitDisabled:  cfg.Server.RateLimitDisabled,
	}))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddStoreService(services.NewStoreGCService(db, cfg.Store.GCInterval, cfg.Store.GCDiscardRatio, logging.WithComponent("store-gc")))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutting down, waiting for services to stop")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Stopped")
}
