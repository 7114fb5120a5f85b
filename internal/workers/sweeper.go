// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/service"
)

// pendingOfferSweeper periodically removes offers that never got their
// picture attached, together with whatever the media store still holds
// for them.
type pendingOfferSweeper struct {
	offers   service.OfferService
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewPendingOfferSweeper(offers service.OfferService, cfg config.Workers, logger *logger.Logger) Worker {
	return &pendingOfferSweeper{
		offers:   offers,
		interval: cfg.SweepInterval,
		ttl:      cfg.PendingTTL,
		now:      time.Now,
		logger:   logger.Component("pending-offer-sweeper"),
	}
}

func (s *pendingOfferSweeper) Run(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.interval).
		Dur("ttl", s.ttl).
		Msg("pending offer sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("pending offer sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *pendingOfferSweeper) sweep(ctx context.Context) {
	cutoff := s.now().Add(-s.ttl)

	removed, err := s.offers.SweepPending(ctx, cutoff)
	if err != nil {
		s.logger.Err(err).Int("removed", removed).Time("cutoff", cutoff).Msg("sweeping pending offers failed")
		return
	}
	if removed > 0 {
		s.logger.Info().Int("removed", removed).Time("cutoff", cutoff).Msg("stale pending offers removed")
	}
}
