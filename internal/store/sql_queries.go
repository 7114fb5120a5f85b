// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-resale-market/models"
)

var (
	userColumns = []string{
		"user_id", "email", "username", "avatar", "newsletter",
		"token", "hash", "salt", "created_at",
	}

	offerColumns = []string{
		"offer_id", "title", "description", "price", "details",
		"image", "owner_id", "status", "created_at", "updated_at",
	}
)

// likeEscaper escapes the LIKE wildcards of a user-supplied substring so it
// is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildListQuery translates a validated listing specification into a
// SELECT over the offers table. It is a pure function: the caller chooses
// the placeholder format and executes the query.
//
// Only offers whose picture is attached are listed. The title filter is a
// case-insensitive substring match; price bounds are inclusive. Without a
// sort key offers come in insertion order. A price sort falls back to
// insertion order between equal prices so that pages are stable.
func BuildListQuery(spec models.QuerySpec) sq.SelectBuilder {
	query := sq.Select(offerColumns...).
		From(models.Offer{}.TableName()).
		Where(sq.Eq{"status": string(models.OfferStatusMediaAttached)})

	if spec.Title != nil {
		// both sides are folded with Go's ToLower on SQLite, see sqliteDriver
		pattern := "%" + likeEscaper.Replace(strings.ToLower(*spec.Title)) + "%"
		query = query.Where(sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, pattern))
	}
	if spec.PriceMin != nil {
		query = query.Where(sq.GtOrEq{"price": *spec.PriceMin})
	}
	if spec.PriceMax != nil {
		query = query.Where(sq.LtOrEq{"price": *spec.PriceMax})
	}

	switch spec.Sort {
	case models.SortPriceAsc:
		query = query.OrderBy("price ASC", "created_at ASC", "offer_id ASC")
	case models.SortPriceDesc:
		query = query.OrderBy("price DESC", "created_at ASC", "offer_id ASC")
	default:
		query = query.OrderBy("created_at ASC", "offer_id ASC")
	}

	if spec.PageSize > 0 {
		query = query.Limit(spec.PageSize).Offset(spec.Offset())
	}

	return query
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var avatar models.NullMediaHandle

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Account.Username,
		&avatar,
		&user.Newsletter,
		&user.Token,
		&user.Hash,
		&user.Salt,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	user.Account.Avatar = avatar.Handle

	return user, nil
}

func scanOffer(row rowScanner) (models.Offer, error) {
	var offer models.Offer
	var image models.NullMediaHandle
	var status string

	err := row.Scan(
		&offer.OfferID,
		&offer.Title,
		&offer.Description,
		&offer.Price,
		&offer.Details,
		&image,
		&offer.OwnerID,
		&status,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
	if err != nil {
		return models.Offer{}, err
	}
	offer.Image = image.Handle
	offer.Status = models.OfferStatus(status)

	return offer, nil
}
