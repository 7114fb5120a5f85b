// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-resale-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts user as given. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByToken resolves a bearer token by exact match.
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// SetAvatar stores the avatar handle of an existing user.
	SetAvatar(ctx context.Context, userID string, avatar models.MediaHandle) error
}

// OfferRepository is the offer store.
type OfferRepository interface {
	// CreateOffer inserts offer in the pending state with no image.
	CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error)
	// AttachImage stores the picture handle and moves the offer to
	// media_attached.
	AttachImage(ctx context.Context, offerID string, image models.MediaHandle) (models.Offer, error)
	GetOffer(ctx context.Context, offerID string) (models.Offer, error)
	// UpdateOffer overwrites title, description, price, details and owner.
	UpdateOffer(ctx context.Context, offer models.Offer) (models.Offer, error)
	// DeleteOffer removes the offer and returns the removed row.
	DeleteOffer(ctx context.Context, offerID string) (models.Offer, error)
	// ListOffers returns the media_attached offers matching spec.
	ListOffers(ctx context.Context, spec models.QuerySpec) ([]models.Offer, error)
	// ListPendingOffers returns the offers still pending that were created
	// before olderThan.
	ListPendingOffers(ctx context.Context, olderThan time.Time) ([]models.Offer, error)
}
