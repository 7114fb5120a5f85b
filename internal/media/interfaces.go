// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media talks to the external media store that keeps offer pictures
// and user avatars.
//
// The store is eventually consistent and owned by nobody but the records
// that reference its objects: a [models.MediaHandle] saved on an offer or a
// user is the only pointer to the object. Two backends are provided, a
// Cloudinary store on the official SDK ([NewCloudinaryStore]) and an
// S3-compatible object store ([NewS3Store]). [NewStore] picks one from
// configuration.
//
// Backend failures are mapped to the sentinel errors of this package so that
// callers can use [errors.Is] regardless of the backend.
package media

import (
	"context"

	"github.com/MKhiriev/go-resale-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/media_mock.go -package=mock

// Store is the media store contract.
type Store interface {
	// Upload stores one object inside in.Folder and returns its handle.
	Upload(ctx context.Context, in models.UploadInput) (models.MediaHandle, error)

	// Destroy removes the object identified by publicID. A missing object is
	// not an error: the result reports [models.DestroyResultNotFound].
	Destroy(ctx context.Context, publicID string) (models.DestroyResult, error)

	// ListFolder lists the objects currently stored in folder.
	ListFolder(ctx context.Context, folder string) (models.FolderListing, error)

	// DeleteFolder removes an empty folder.
	DeleteFolder(ctx context.Context, folder string) error
}
