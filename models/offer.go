// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// OfferStatus is the lifecycle state of an offer.
//
// An offer is created as [OfferStatusPending] with no image and moves to
// [OfferStatusMediaAttached] once its picture is stored in the media store.
// Offers stuck in pending are reclaimed by the pending-offer sweeper.
type OfferStatus string

const (
	OfferStatusPending       OfferStatus = "pending"
	OfferStatusMediaAttached OfferStatus = "media_attached"
)

// Labels of the offer details, kept in the order they are displayed.
const (
	DetailBrand     = "MARQUE"
	DetailSize      = "TAILLE"
	DetailCondition = "ÉTAT"
	DetailColor     = "COULEUR"
	DetailCity      = "EMPLACEMENT"
)

// Offer is a secondhand-goods listing.
type Offer struct {
	// OfferID is the unique identifier of the offer (UUID v7 string).
	OfferID string `json:"_id"`

	Title       string       `json:"product_name"`
	Description string       `json:"product_description"`
	Price       float64      `json:"product_price"`
	Details     OfferDetails `json:"product_details"`
	Image       *MediaHandle `json:"product_image"`

	// OwnerID references the user that currently owns the offer.
	OwnerID string `json:"owner_id"`

	// Owner is the inlined public view of the owner. It is only populated
	// when a single offer is fetched.
	Owner *Owner `json:"owner,omitempty"`

	Status    OfferStatus `json:"-"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Offer model.
func (o Offer) TableName() string {
	return "offers"
}

// OfferDetail is a single key/value attribute of an offer.
// It is rendered as a one-key JSON object, e.g. {"MARQUE": "Levi's"}.
type OfferDetail struct {
	Key   string
	Value string
}

// MarshalJSON implements [json.Marshaler].
func (d OfferDetail) MarshalJSON() ([]byte, error) {
	key, err := json.Marshal(d.Key)
	if err != nil {
		return nil, err
	}
	value, err := json.Marshal(d.Value)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(value)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (d *OfferDetail) UnmarshalJSON(b []byte) error {
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("offer detail must have exactly one key, got %d", len(m))
	}

	for k, v := range m {
		d.Key, d.Value = k, v
	}

	return nil
}

// OfferDetails is the ordered list of attributes of an offer.
// It is stored as a JSON array column.
type OfferDetails []OfferDetail

// Value implements [driver.Valuer].
func (d OfferDetails) Value() (driver.Value, error) {
	if d == nil {
		d = OfferDetails{}
	}

	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("error marshaling offer details: %w", err)
	}

	return string(b), nil
}

// Scan implements [sql.Scanner].
func (d *OfferDetails) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = OfferDetails{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported offer details column type %T", src)
	}

	details := OfferDetails{}
	if err := json.Unmarshal(raw, &details); err != nil {
		return errors.Join(errors.New("error decoding offer details"), err)
	}
	*d = details

	return nil
}

// OfferForm is the raw, unvalidated offer input as received from a client
// form. Every value is a string exactly as it was sent.
type OfferForm struct {
	Title       string
	Description string
	Price       string
	Brand       string
	Size        string
	Condition   string
	Color       string
	City        string
}

// OfferFields is the validated offer input.
type OfferFields struct {
	Title       string  `validate:"required,max=50"`
	Description string  `validate:"required,max=500"`
	Price       float64 `validate:"gte=0,lte=10000"`
	Brand       string  `validate:"required"`
	Size        string  `validate:"required"`
	Condition   string  `validate:"required"`
	Color       string  `validate:"required"`
	City        string  `validate:"required"`
}

// Details returns the ordered attribute list of the offer.
func (f OfferFields) Details() OfferDetails {
	return OfferDetails{
		{Key: DetailBrand, Value: f.Brand},
		{Key: DetailSize, Value: f.Size},
		{Key: DetailCondition, Value: f.Condition},
		{Key: DetailColor, Value: f.Color},
		{Key: DetailCity, Value: f.City},
	}
}

// DeleteResult reports the outcome of an offer deletion.
type DeleteResult struct {
	// PictureDeleted is false when the media store did not confirm the
	// removal of the offer picture. The offer record is gone either way.
	PictureDeleted bool

	// FolderDeleted reports whether the emptied offer folder was removed.
	FolderDeleted bool
}
