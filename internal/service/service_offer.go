// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/media"
	"github.com/MKhiriev/go-resale-market/internal/store"
	"github.com/MKhiriev/go-resale-market/internal/utils"
	"github.com/MKhiriev/go-resale-market/internal/validators"
	"github.com/MKhiriev/go-resale-market/models"
)

// offerService is the concrete implementation of OfferService.
//
// Creating an offer takes two writes: the record is inserted as pending so
// its id can name the media folder, then the uploaded picture is attached.
// A create that fails between the two writes removes the pending record on
// a best-effort basis; whatever survives is reclaimed by SweepPending.
//
// Create input is expected to be validated already, see
// offerValidationService. Update validates its form itself, after the offer
// lookup.
type offerService struct {
	offerRepository   store.OfferRepository
	mediaStore        media.Store
	validator         validators.Validator
	ids               *utils.UUIDGenerator
	offerFolderPrefix string
	logger            *logger.Logger
}

// NewOfferService constructs an OfferService over the offer store and the
// media store.
func NewOfferService(offerRepository store.OfferRepository, mediaStore media.Store, validator validators.Validator, cfg config.Media, logger *logger.Logger) OfferService {
	return &offerService{
		offerRepository:   offerRepository,
		mediaStore:        mediaStore,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		offerFolderPrefix: cfg.OfferFolderPrefix,
		logger:            logger.Component("offer-service"),
	}
}

// Create publishes a new offer owned by ownerID.
func (s *offerService) Create(ctx context.Context, fields models.OfferFields, picture *models.Upload, ownerID string) (models.Offer, error) {
	log := logger.FromContext(ctx)

	if picture == nil {
		return models.Offer{}, fmt.Errorf("%w: picture is required", ErrInvalidDataProvided)
	}

	offer, err := s.offerRepository.CreateOffer(ctx, models.Offer{
		OfferID:     s.ids.Generate(),
		Title:       fields.Title,
		Description: fields.Description,
		Price:       fields.Price,
		Details:     fields.Details(),
		OwnerID:     ownerID,
	})
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("offer creation ended with error")
		return models.Offer{}, fmt.Errorf("offer creation ended with error: %w", err)
	}

	attached, err := s.attachPicture(ctx, offer.OfferID, *picture)
	if err != nil {
		s.discardPending(ctx, offer.OfferID)
		return models.Offer{}, err
	}

	return attached, nil
}

// Update rewrites the offer fields and reassigns the offer to requesterID.
//
// With a picture, the new one is uploaded and attached first and the
// previous one is destroyed only afterwards, so a failed upload leaves the
// offer pointing at its old, still existing picture.
func (s *offerService) Update(ctx context.Context, offerID string, form models.OfferForm, picture *models.Upload, requesterID string) (models.Offer, error) {
	log := logger.FromContext(ctx).With().Str("offer_id", offerID).Logger()

	current, err := s.offerRepository.GetOffer(ctx, offerID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("offer lookup failed: %w", err)
	}

	fields, err := s.validateForm(ctx, form, picture)
	if err != nil {
		return models.Offer{}, err
	}

	updated, err := s.offerRepository.UpdateOffer(ctx, models.Offer{
		OfferID:     offerID,
		Title:       fields.Title,
		Description: fields.Description,
		Price:       fields.Price,
		Details:     fields.Details(),
		OwnerID:     requesterID,
	})
	if err != nil {
		log.Err(err).Msg("offer update ended with error")
		return models.Offer{}, fmt.Errorf("offer update ended with error: %w", err)
	}

	if picture == nil {
		return updated, nil
	}

	attached, err := s.attachPicture(ctx, offerID, *picture)
	if err != nil {
		log.Warn().Err(err).Msg("offer keeps its previous picture")
		return models.Offer{}, err
	}

	if current.Image != nil {
		result, err := s.mediaStore.Destroy(ctx, current.Image.PublicID)
		if err != nil {
			log.Warn().Err(err).Str("public_id", current.Image.PublicID).Msg("previous picture not destroyed")
		} else if !result.OK() {
			log.Warn().Str("public_id", current.Image.PublicID).Str("result", result.Result).Msg("previous picture not destroyed")
		}
	}

	return attached, nil
}

// validateForm parses and checks an update form. The picture is optional.
func (s *offerService) validateForm(ctx context.Context, form models.OfferForm, picture *models.Upload) (models.OfferFields, error) {
	fields, err := validators.ParseOfferForm(form)
	if err != nil {
		return models.OfferFields{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err = s.validator.Validate(ctx, fields); err != nil {
		return models.OfferFields{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if picture != nil {
		if err = s.validator.Validate(ctx, picture); err != nil {
			return models.OfferFields{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return fields, nil
}

// Delete removes the offer, then its picture, then its folder once empty.
// Media failures do not fail the deletion; they are reported through the
// returned DeleteResult.
func (s *offerService) Delete(ctx context.Context, offerID string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx).With().Str("offer_id", offerID).Logger()

	deleted, err := s.offerRepository.DeleteOffer(ctx, offerID)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("offer deletion ended with error: %w", err)
	}

	result := models.DeleteResult{PictureDeleted: true}
	if deleted.Image != nil {
		destroyed, err := s.mediaStore.Destroy(ctx, deleted.Image.PublicID)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("public_id", deleted.Image.PublicID).Msg("picture not deleted")
			result.PictureDeleted = false
		case !destroyed.OK():
			log.Warn().Str("public_id", deleted.Image.PublicID).Str("result", destroyed.Result).Msg("picture not deleted")
			result.PictureDeleted = false
		}
	}

	result.FolderDeleted = s.deleteFolderIfEmpty(ctx, s.offerFolder(offerID))

	return result, nil
}

// SweepPending removes the offers that never got their picture attached.
// Each offer is handled independently; the first error is returned after
// the whole batch was tried.
func (s *offerService) SweepPending(ctx context.Context, olderThan time.Time) (int, error) {
	log := logger.FromContext(ctx)

	pending, err := s.offerRepository.ListPendingOffers(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("pending offers lookup failed: %w", err)
	}

	var (
		removed  int
		firstErr error
	)
	for _, offer := range pending {
		if err = ctx.Err(); err != nil {
			return removed, err
		}

		folder := s.offerFolder(offer.OfferID)
		listing, err := s.mediaStore.ListFolder(ctx, folder)
		if err != nil && !errors.Is(err, media.ErrNotFound) {
			log.Warn().Err(err).Str("offer_id", offer.OfferID).Msg("pending offer folder not listed")
		}
		for _, res := range listing.Resources {
			if _, err = s.mediaStore.Destroy(ctx, res.PublicID); err != nil {
				log.Warn().Err(err).Str("public_id", res.PublicID).Msg("orphaned picture not destroyed")
			}
		}
		s.deleteFolderIfEmpty(ctx, folder)

		if _, err = s.offerRepository.DeleteOffer(ctx, offer.OfferID); err != nil {
			if errors.Is(err, store.ErrOfferNotFound) {
				continue
			}
			log.Err(err).Str("offer_id", offer.OfferID).Msg("pending offer not deleted")
			if firstErr == nil {
				firstErr = fmt.Errorf("pending offer %s not deleted: %w", offer.OfferID, err)
			}
			continue
		}
		removed++
	}

	return removed, firstErr
}

// attachPicture uploads picture into the offer folder and links it to the
// offer. If the link fails, the uploaded object is destroyed again.
func (s *offerService) attachPicture(ctx context.Context, offerID string, picture models.Upload) (models.Offer, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*offerService.attachPicture").
		Str("offer_id", offerID).
		Logger()

	handle, err := s.mediaStore.Upload(ctx, models.UploadInput{
		Upload: picture,
		Folder: s.offerFolder(offerID),
	})
	if err != nil {
		log.Err(err).Msg("picture upload failed")
		return models.Offer{}, fmt.Errorf("%w: %w", ErrMediaAttachFailed, err)
	}

	offer, err := s.offerRepository.AttachImage(ctx, offerID, handle)
	if err != nil {
		log.Err(err).Msg("picture link failed")
		if _, derr := s.mediaStore.Destroy(ctx, handle.PublicID); derr != nil {
			log.Warn().Err(derr).Str("public_id", handle.PublicID).Msg("orphaned picture left in media store")
		}
		return models.Offer{}, fmt.Errorf("%w: %w", ErrMediaAttachFailed, err)
	}

	return offer, nil
}

// discardPending removes a pending offer after a failed create. The request
// context may already be done, so the removal gets its own short deadline.
func (s *offerService) discardPending(ctx context.Context, offerID string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if _, err := s.offerRepository.DeleteOffer(cleanupCtx, offerID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("offer_id", offerID).
			Msg("pending offer left for the sweeper")
	}
}

// deleteFolderIfEmpty removes folder when the media store reports no
// object left in it.
func (s *offerService) deleteFolderIfEmpty(ctx context.Context, folder string) bool {
	log := logger.FromContext(ctx).With().Str("folder", folder).Logger()

	listing, err := s.mediaStore.ListFolder(ctx, folder)
	if err != nil {
		log.Warn().Err(err).Msg("folder not listed")
		return false
	}
	if listing.TotalCount != 0 {
		return false
	}

	if err = s.mediaStore.DeleteFolder(ctx, folder); err != nil {
		log.Warn().Err(err).Msg("folder not deleted")
		return false
	}

	return true
}

func (s *offerService) offerFolder(offerID string) string {
	return s.offerFolderPrefix + offerID
}
