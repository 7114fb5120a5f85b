// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// DestroyResultOK is the result reported by the media store when an object
// was removed.
const DestroyResultOK = "ok"

// DestroyResultNotFound is the result reported by the media store when the
// object to remove does not exist.
const DestroyResultNotFound = "not found"

// MediaHandle is an opaque reference to an object stored in the media
// store. The record referencing a handle owns it: reclaiming the object is
// the job of that record's lifecycle operation.
type MediaHandle struct {
	// PublicID identifies the object inside the media store.
	PublicID string `json:"public_id"`

	// URL is the plain address of the object.
	URL string `json:"url"`

	// SecureURL is the HTTPS address of the object.
	SecureURL string `json:"secure_url,omitempty"`

	// Folder is the media store folder the object was uploaded into.
	Folder string `json:"asset_folder"`
}

// Upload is a file received from a client, kept in memory until it is
// forwarded to the media store.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadInput describes a single object to upload into the media store.
type UploadInput struct {
	Upload

	// Folder is the folder the object is placed in. The media store uses it
	// as the prefix of the generated public id.
	Folder string
}

// DestroyResult is the outcome of removing an object from the media store.
type DestroyResult struct {
	Result string `json:"result"`
}

// OK reports whether the object was actually removed.
func (r DestroyResult) OK() bool {
	return r.Result == DestroyResultOK
}

// FolderListing lists the objects currently stored in a media folder.
type FolderListing struct {
	Resources  []MediaHandle `json:"resources"`
	TotalCount int           `json:"total_count"`
}

// Value implements [driver.Valuer] so a handle can be stored in a JSON
// column. A nil handle is stored as SQL NULL.
func (m *MediaHandle) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("error marshaling media handle: %w", err)
	}

	return string(b), nil
}

// NullMediaHandle scans a nullable JSON column into a *MediaHandle.
type NullMediaHandle struct {
	Handle *MediaHandle
}

// Scan implements [sql.Scanner].
func (n *NullMediaHandle) Scan(src any) error {
	n.Handle = nil

	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported media handle column type %T", src)
	}

	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var handle MediaHandle
	if err := json.Unmarshal(raw, &handle); err != nil {
		return errors.Join(errors.New("error decoding media handle"), err)
	}
	n.Handle = &handle

	return nil
}
