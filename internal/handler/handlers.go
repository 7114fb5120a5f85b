// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the marketplace
// server.
package handler

import (
	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/handler/http"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
