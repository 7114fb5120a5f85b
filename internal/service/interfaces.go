// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-resale-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and resolves their opaque bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)

	// Authenticate returns the user owning token, or ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// OfferService drives the offer lifecycle across the offer store and the
// media store.
type OfferService interface {
	Create(ctx context.Context, fields models.OfferFields, picture *models.Upload, ownerID string) (models.Offer, error)

	// Update rewrites the offer from the raw form and hands the offer over
	// to requesterID. A nil picture keeps the current one. A missing offer
	// is reported before any problem with the form.
	Update(ctx context.Context, offerID string, form models.OfferForm, picture *models.Upload, requesterID string) (models.Offer, error)
	Delete(ctx context.Context, offerID string) (models.DeleteResult, error)

	// SweepPending reclaims offers still pending that were created before
	// olderThan and returns how many were removed.
	SweepPending(ctx context.Context, olderThan time.Time) (int, error)
}

// ListingService answers the public read-only offer queries.
type ListingService interface {
	List(ctx context.Context, params models.ListParams) ([]models.Offer, error)
	GetOne(ctx context.Context, offerID string) (models.Offer, error)
}
