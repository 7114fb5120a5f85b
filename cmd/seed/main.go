// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command seed pushes demo users and offers to a running marketplace server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/MKhiriev/go-resale-market/internal/adapter"
	"github.com/MKhiriev/go-resale-market/internal/logger"
)

func main() {
	var (
		address string
		file    string
		timeout time.Duration
	)
	flag.StringVar(&address, "a", "localhost:3000", "marketplace server address")
	flag.StringVar(&file, "f", "seed.json", "seed file")
	flag.DurationVar(&timeout, "t", 30*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("resale-market-seed")

	seed, err := loadSeed(file)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading seed")
	}

	market, err := adapter.NewHTTPMarketAdapter(address, timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating market adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := &seeder{
		market:   market,
		baseDir:  filepath.Dir(file),
		readFile: os.ReadFile,
		logger:   log,
	}

	published, err := s.run(ctx, seed)
	if err != nil {
		log.Error().Err(err).Int("published", published).Msg("seeding stopped")
		stop()
		os.Exit(1)
	}

	log.Info().Int("published", published).Msg("seeding finished")
}
