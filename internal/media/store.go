// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
)

// NewStore builds the media backend selected by cfg.Provider.
func NewStore(ctx context.Context, cfg config.Media, log *logger.Logger) (Store, error) {
	switch cfg.Provider {
	case config.MediaProviderCloudinary:
		return NewCloudinaryStore(cfg.Cloudinary, log)
	case config.MediaProviderS3:
		return NewS3Store(ctx, cfg.S3, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
