// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/media"
	"github.com/MKhiriev/go-resale-market/internal/store"
	"github.com/MKhiriev/go-resale-market/internal/validators"
)

type Services struct {
	AuthService    AuthService
	OfferService   OfferService
	ListingService ListingService
}

func NewServices(storages *store.Storages, mediaStore media.Store, cfg config.Media, logger *logger.Logger) *Services {
	validator := validators.NewMarketValidator()

	offerService := NewOfferValidationService(validator).
		Wrap(NewOfferService(storages.OfferRepository, mediaStore, validator, cfg, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, mediaStore, validator, cfg, logger),
		OfferService:   offerService,
		ListingService: NewListingService(storages.OfferRepository, storages.UserRepository, logger),
	}
}
