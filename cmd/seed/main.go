// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command seed loads the demo vendors and evaluations into the configured
// store. It takes the same flags and environment as the server and refuses
// a store that already has vendors.
//
//	go run ./cmd/seed -s json -j ./data/data.json
package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/danielhkuo/vpm/cliparse"
	"github.com/danielhkuo/vpm/seed"
	"github.com/danielhkuo/vpm/store"
)

func main() {
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	s, err := store.Open(cfg)
	if err != nil {
		slog.Error("failed to open store", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer s.Close()

	now := time.Now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), rand.Uint64()))

	if err := seed.Load(context.Background(), s, seed.Generate(rng, now)); err != nil {
		slog.Error("seeding failed", "error", err)
		s.Close()
		os.Exit(1)
	}
	slog.Info("Seed complete", "store", cfg.Store)
}
