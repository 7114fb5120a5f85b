// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/models"
)

// offerRepository is the SQL implementation of [OfferRepository] over the
// "offers" table.
type offerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOfferRepository constructs an [OfferRepository] backed by db.
func NewOfferRepository(db *DB, logger *logger.Logger) OfferRepository {
	logger.Debug().Msg("creating offer repository")
	return &offerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOffer inserts offer with status pending and no image, whatever the
// input says, and returns the stored row.
func (r *offerRepository) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	log := logger.FromContext(ctx)

	offer.Status = models.OfferStatusPending
	offer.Image = nil
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now().UTC()
	}
	if offer.UpdatedAt.IsZero() {
		offer.UpdatedAt = offer.CreatedAt
	}

	query, args, err := r.db.builder.
		Insert(offer.TableName()).
		Columns(offerColumns...).
		Values(
			offer.OfferID,
			offer.Title,
			offer.Description,
			offer.Price,
			offer.Details,
			offer.Image,
			offer.OwnerID,
			string(offer.Status),
			offer.CreatedAt,
			offer.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*offerRepository.CreateOffer").
			Str("offer_id", offer.OfferID).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error inserting offer")
		return models.Offer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return offer, nil
}

// AttachImage sets the picture of offerID and marks it media_attached.
func (r *offerRepository) AttachImage(ctx context.Context, offerID string, image models.MediaHandle) (models.Offer, error) {
	return r.updateAndGet(ctx, "*offerRepository.AttachImage", offerID, map[string]any{
		"image":      &image,
		"status":     string(models.OfferStatusMediaAttached),
		"updated_at": time.Now().UTC(),
	})
}

// UpdateOffer overwrites the editable fields and the owner of offer.
func (r *offerRepository) UpdateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	return r.updateAndGet(ctx, "*offerRepository.UpdateOffer", offer.OfferID, map[string]any{
		"title":       offer.Title,
		"description": offer.Description,
		"price":       offer.Price,
		"details":     offer.Details,
		"owner_id":    offer.OwnerID,
		"updated_at":  time.Now().UTC(),
	})
}

// GetOffer returns the offer with the given id in any state.
func (r *offerRepository) GetOffer(ctx context.Context, offerID string) (models.Offer, error) {
	return r.getOffer(ctx, r.db, offerID)
}

// DeleteOffer removes offerID inside a transaction and returns the removed
// row so the caller can reclaim its media.
func (r *offerRepository) DeleteOffer(ctx context.Context, offerID string) (models.Offer, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.DeleteOffer").Msg("failed to begin transaction")
		return models.Offer{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	offer, err := r.getOffer(ctx, tx, offerID)
	if err != nil {
		return models.Offer{}, err
	}

	query, args, err := r.db.builder.
		Delete(offer.TableName()).
		Where(sq.Eq{"offer_id": offerID}).
		ToSql()
	if err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*offerRepository.DeleteOffer").Str("offer_id", offerID).Msg("error deleting offer")
		return models.Offer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*offerRepository.DeleteOffer").Msg("failed to commit transaction")
		return models.Offer{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return offer, nil
}

// ListOffers runs [BuildListQuery] for spec.
func (r *offerRepository) ListOffers(ctx context.Context, spec models.QuerySpec) ([]models.Offer, error) {
	query, args, err := BuildListQuery(spec).PlaceholderFormat(r.db.placeholder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOffers(ctx, "*offerRepository.ListOffers", query, args)
}

// ListPendingOffers returns pending offers created before olderThan, oldest
// first.
func (r *offerRepository) ListPendingOffers(ctx context.Context, olderThan time.Time) ([]models.Offer, error) {
	query, args, err := r.db.builder.
		Select(offerColumns...).
		From(models.Offer{}.TableName()).
		Where(sq.Eq{"status": string(models.OfferStatusPending)}).
		Where(sq.Lt{"created_at": olderThan.UTC()}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOffers(ctx, "*offerRepository.ListPendingOffers", query, args)
}

// querier is satisfied by *DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *offerRepository) getOffer(ctx context.Context, q querier, offerID string) (models.Offer, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(offerColumns...).
		From(models.Offer{}.TableName()).
		Where(sq.Eq{"offer_id": offerID}).
		ToSql()
	if err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	offer, err := scanOffer(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, ErrOfferNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.getOffer").Str("offer_id", offerID).Msg("error reading offer")
		return models.Offer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return offer, nil
}

func (r *offerRepository) updateAndGet(ctx context.Context, funcName, offerID string, values map[string]any) (models.Offer, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Offer{}.TableName()).
		SetMap(values).
		Where(sq.Eq{"offer_id": offerID}).
		ToSql()
	if err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("offer_id", offerID).Msg("error updating offer")
		return models.Offer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Offer{}, ErrOfferNotFound
	}

	return r.getOffer(ctx, r.db, offerID)
}

func (r *offerRepository) queryOffers(ctx context.Context, funcName, query string, args []any) ([]models.Offer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	offers := make([]models.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan offer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		offers = append(offers, offer)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating offer rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return offers, nil
}
