// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
)

func TestNewStore(t *testing.T) {
	s, err := NewStore(context.Background(), config.Media{
		Provider:   config.MediaProviderCloudinary,
		Cloudinary: config.Cloudinary{CloudName: "demo", APIKey: "key", APISecret: "secret", BaseURL: "https://api.cloudinary.com"},
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &cloudinaryStore{}, s)

	s, err = NewStore(context.Background(), config.Media{
		Provider: config.MediaProviderS3,
		S3:       config.S3{Region: "us-east-1", Bucket: "b", AccessKeyID: "a", SecretAccessKey: "s"},
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &s3Store{}, s)

	_, err = NewStore(context.Background(), config.Media{Provider: "ftp"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
