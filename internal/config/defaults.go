// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress       = "localhost:3000"
	defaultRequestTimeout    = 30 * time.Second
	defaultMaxUploadSize     = 10 << 20
	defaultCloudinaryBaseURL = "https://api.cloudinary.com"
	defaultOfferFolderPrefix = "resale-market/offers/"
	defaultUserFolderPrefix  = "resale-market/users/"
	defaultSweepInterval     = time.Minute
	defaultPendingTTL        = 15 * time.Minute
)

// defaults returns the values used for every field that no source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Media: Media{
			Provider:          MediaProviderCloudinary,
			OfferFolderPrefix: defaultOfferFolderPrefix,
			UserFolderPrefix:  defaultUserFolderPrefix,
			Cloudinary: Cloudinary{
				BaseURL: defaultCloudinaryBaseURL,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			MaxUploadSize:  defaultMaxUploadSize,
		},
		Workers: Workers{
			SweepInterval: defaultSweepInterval,
			PendingTTL:    defaultPendingTTL,
		},
	}
}
