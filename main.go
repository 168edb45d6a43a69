// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/vpm/ai"
	"github.com/danielhkuo/vpm/cliparse"
	"github.com/danielhkuo/vpm/router"
	"github.com/danielhkuo/vpm/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the configured backend
	s, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	slog.Info("Store ready", "backend", cfg.Store)

	var svc *ai.Service
	if cfg.AIEnabled() {
		gen, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout)
		if err != nil {
			return err
		}
		svc = ai.NewService(gen)
		slog.Info("AI routes enabled", "model", cfg.GeminiModel, "rate_per_minute", cfg.AIRateLimit)
	} else {
		slog.Warn("GEMINI_API_KEY not set, AI routes will answer 503")
	}

	server := &http.Server{
		Handler: router.NewRouter(s, svc, cfg),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Wait for Ctrl-C or a listener failure
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownWait)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	slog.Info("Server closed", "error", err)
	return err
}
