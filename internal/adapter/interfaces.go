// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the marketplace REST API.
//
// The primary abstraction is [MarketAdapter], used by tooling such as the
// seed command to drive a running server. The package ships an HTTP
// implementation ([NewHTTPMarketAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-resale-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MarketAdapter defines client-side communication with the marketplace
// server. Implementations handle serialisation, the bearer token and the
// mapping of HTTP failures to the sentinel errors of this package.
type MarketAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Signup creates an account. The request is sent as multipart when an
	// avatar is present and as JSON otherwise. On success the returned token
	// is stored via SetToken.
	Signup(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login authenticates with email and password and stores the returned
	// token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)

	// Publish creates an offer with its picture. Requires a token.
	Publish(ctx context.Context, form models.OfferForm, picture models.Upload) (models.Offer, error)

	// UpdateOffer replaces the fields of an offer and, when picture is not
	// nil, its picture. Requires a token.
	UpdateOffer(ctx context.Context, offerID string, form models.OfferForm, picture *models.Upload) (models.Offer, error)

	// DeleteOffer removes an offer and returns the server message. Requires
	// a token.
	DeleteOffer(ctx context.Context, offerID string) (string, error)

	// ListOffers lists offers. Nil parameters are left out of the query.
	ListOffers(ctx context.Context, params models.ListParams) ([]models.Offer, error)

	// GetOffer fetches one offer with its owner inlined.
	GetOffer(ctx context.Context, offerID string) (models.Offer, error)
}
