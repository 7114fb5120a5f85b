// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/store"
	"github.com/MKhiriev/go-resale-market/internal/validators"
	"github.com/MKhiriev/go-resale-market/models"
)

// listingService serves the public offer catalogue. Pending offers are
// invisible to it.
type listingService struct {
	offerRepository store.OfferRepository
	userRepository  store.UserRepository
	logger          *logger.Logger
}

func NewListingService(offerRepository store.OfferRepository, userRepository store.UserRepository, logger *logger.Logger) ListingService {
	return &listingService{
		offerRepository: offerRepository,
		userRepository:  userRepository,
		logger:          logger.Component("listing-service"),
	}
}

// List validates the raw query parameters and returns the matching page.
func (s *listingService) List(ctx context.Context, params models.ListParams) ([]models.Offer, error) {
	spec, err := validators.ParseListParams(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	offers, err := s.offerRepository.ListOffers(ctx, spec)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("spec", spec).Msg("offer listing failed")
		return nil, fmt.Errorf("offer listing failed: %w", err)
	}

	return offers, nil
}

// GetOne returns a published offer with its owner inlined.
func (s *listingService) GetOne(ctx context.Context, offerID string) (models.Offer, error) {
	offer, err := s.offerRepository.GetOffer(ctx, offerID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("offer lookup failed: %w", err)
	}
	if offer.Status != models.OfferStatusMediaAttached {
		return models.Offer{}, store.ErrOfferNotFound
	}

	owner, err := s.userRepository.FindUserByID(ctx, offer.OwnerID)
	switch {
	case err == nil:
		o := owner.Owner()
		offer.Owner = &o
	case errors.Is(err, store.ErrNoUserWasFound):
		logger.FromContext(ctx).Warn().
			Str("offer_id", offerID).
			Str("owner_id", offer.OwnerID).
			Msg("offer owner does not exist")
	default:
		return models.Offer{}, fmt.Errorf("owner lookup failed: %w", err)
	}

	return offer, nil
}
