// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/handler"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/media"
	"github.com/MKhiriev/go-resale-market/internal/server"
	"github.com/MKhiriev/go-resale-market/internal/service"
	"github.com/MKhiriev/go-resale-market/internal/store"
	"github.com/MKhiriev/go-resale-market/internal/workers"
	"github.com/MKhiriev/go-resale-market/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("resale-market-server")
	log.Info().
		Str("version", info.BuildVersion()).
		Str("commit", info.BuildCommit()).
		Msg("starting server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// media credentials are kept out of the log
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("media_provider", cfg.Media.Provider).
		Dur("sweep_interval", cfg.Workers.SweepInterval).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	mediaStore, err := media.NewStore(ctx, cfg.Media, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media store")
	}

	services := service.NewServices(storages, mediaStore, cfg.Media, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
