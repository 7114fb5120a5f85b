// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-resale-market/internal/validators"
	"github.com/MKhiriev/go-resale-market/models"
)

// OfferServiceWrapper defines middleware composition for OfferService.
// Implementations wrap an existing OfferService to add behavior such as
// validating.
type OfferServiceWrapper interface {
	Wrap(OfferService) OfferService
}

// offerValidationService checks offer input before handing it to the
// wrapped OfferService. Rejections wrap ErrInvalidDataProvided.
type offerValidationService struct {
	inner     OfferService
	validator validators.Validator
}

func NewOfferValidationService(validator validators.Validator) OfferServiceWrapper {
	return &offerValidationService{validator: validator}
}

// Wrap returns a copy of the wrapper delegating to inner.
func (v *offerValidationService) Wrap(inner OfferService) OfferService {
	return &offerValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

// Create requires valid fields and a picture.
func (v *offerValidationService) Create(ctx context.Context, fields models.OfferFields, picture *models.Upload, ownerID string) (models.Offer, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, picture); err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, fields, picture, ownerID)
}

// Update is passed through: the form can only be checked once the offer is
// known to exist, which the wrapped service does.
func (v *offerValidationService) Update(ctx context.Context, offerID string, form models.OfferForm, picture *models.Upload, requesterID string) (models.Offer, error) {
	return v.inner.Update(ctx, offerID, form, picture, requesterID)
}

func (v *offerValidationService) Delete(ctx context.Context, offerID string) (models.DeleteResult, error) {
	return v.inner.Delete(ctx, offerID)
}

func (v *offerValidationService) SweepPending(ctx context.Context, olderThan time.Time) (int, error) {
	return v.inner.SweepPending(ctx, olderThan)
}
