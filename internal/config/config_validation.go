// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Media.Provider {
	case MediaProviderCloudinary:
		c := cfg.Media.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" || c.BaseURL == "" {
			return fmt.Errorf("%w: incomplete cloudinary credentials", ErrInvalidMediaConfigs)
		}
	case MediaProviderS3:
		if cfg.Media.S3.Bucket == "" || cfg.Media.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidMediaConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidMediaConfigs, cfg.Media.Provider)
	}

	if cfg.Workers.SweepInterval <= 0 || cfg.Workers.PendingTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
