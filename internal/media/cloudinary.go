// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/models"
)

const cloudinaryTimeout = 30 * time.Second

// cloudinaryStore is the Cloudinary implementation of [Store], built on the
// official SDK. Uploads and destroys go through the Upload API, folder
// listing and removal through the Admin API.
type cloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	logger *logger.Logger
}

// NewCloudinaryStore returns a [Store] backed by the Cloudinary account in
// cfg. cfg.BaseURL replaces the SDK's API host, which lets tests and
// proxies stand in for api.cloudinary.com.
func NewCloudinaryStore(cfg config.Cloudinary, log *logger.Logger) (Store, error) {
	conf, err := cldconfig.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("error configuring cloudinary: %w", err)
	}
	if cfg.BaseURL != "" {
		conf.API.UploadPrefix = strings.TrimRight(cfg.BaseURL, "/")
	}
	conf.API.Timeout = int64(cloudinaryTimeout / time.Second)

	cld, err := cloudinary.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("error creating cloudinary client: %w", err)
	}

	return &cloudinaryStore{
		cld:    cld,
		logger: log.Component("media-cloudinary"),
	}, nil
}

// Upload implements [Store]. The public id is prefixed with the folder.
func (c *cloudinaryStore) Upload(ctx context.Context, in models.UploadInput) (models.MediaHandle, error) {
	if len(in.Data) == 0 {
		return models.MediaHandle{}, ErrEmptyUpload
	}

	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(in.Data), uploader.UploadParams{
		ResourceType:                   "image",
		AssetFolder:                    in.Folder,
		UseAssetFolderAsPublicIDPrefix: api.Bool(true),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cloudinaryStore.Upload").Msg("upload request failed")
		return models.MediaHandle{}, fmt.Errorf("%w: upload: %w", ErrUnavailable, err)
	}
	if err = mapAPIError(resp.Error); err != nil {
		return models.MediaHandle{}, err
	}
	if resp.PublicID == "" {
		return models.MediaHandle{}, fmt.Errorf("%w: upload returned no public_id", ErrMalformedResponse)
	}

	return models.MediaHandle{
		PublicID:  resp.PublicID,
		URL:       resp.URL,
		SecureURL: resp.SecureURL,
		Folder:    in.Folder,
	}, nil
}

// Destroy implements [Store].
func (c *cloudinaryStore) Destroy(ctx context.Context, publicID string) (models.DestroyResult, error) {
	if publicID == "" {
		return models.DestroyResult{}, ErrEmptyPublicID
	}

	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return models.DestroyResult{}, fmt.Errorf("%w: destroy: %w", ErrUnavailable, err)
	}
	if err = mapAPIError(resp.Error); err != nil {
		return models.DestroyResult{}, err
	}

	return models.DestroyResult{Result: resp.Result}, nil
}

// ListFolder implements [Store].
func (c *cloudinaryStore) ListFolder(ctx context.Context, folder string) (models.FolderListing, error) {
	resp, err := c.cld.Admin.AssetsByAssetFolder(ctx, admin.AssetsByAssetFolderParams{AssetFolder: folder})
	if err != nil {
		return models.FolderListing{}, fmt.Errorf("%w: list folder: %w", ErrUnavailable, err)
	}
	if err = mapAPIError(resp.Error); err != nil {
		return models.FolderListing{}, err
	}

	listing := models.FolderListing{Resources: make([]models.MediaHandle, 0, len(resp.Assets))}
	for _, asset := range resp.Assets {
		listing.Resources = append(listing.Resources, models.MediaHandle{
			PublicID:  asset.PublicID,
			URL:       asset.URL,
			SecureURL: asset.SecureURL,
			Folder:    folder,
		})
	}
	listing.TotalCount = len(listing.Resources)

	return listing, nil
}

// DeleteFolder implements [Store].
func (c *cloudinaryStore) DeleteFolder(ctx context.Context, folder string) error {
	resp, err := c.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: strings.Trim(folder, "/")})
	if err != nil {
		return fmt.Errorf("%w: delete folder: %w", ErrUnavailable, err)
	}

	return mapAPIError(resp.Error)
}
