// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Media struct {
		Provider          string `json:"provider"`
		OfferFolderPrefix string `json:"offer_folder_prefix"`
		UserFolderPrefix  string `json:"user_folder_prefix"`

		Cloudinary struct {
			CloudName string `json:"cloud_name"`
			APIKey    string `json:"api_key"`
			APISecret string `json:"api_secret"`
			BaseURL   string `json:"base_url"`
		} `json:"cloudinary,omitempty"`

		S3 struct {
			Endpoint        string `json:"endpoint"`
			Region          string `json:"region"`
			Bucket          string `json:"bucket"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			PublicBaseURL   string `json:"public_base_url"`
			UsePathStyle    bool   `json:"use_path_style"`
		} `json:"s3,omitempty"`
	} `json:"media,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
		PendingTTL    Duration `json:"pending_ttl"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	media := jsonCfg.Media
	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Media: Media{
			Provider:          media.Provider,
			OfferFolderPrefix: media.OfferFolderPrefix,
			UserFolderPrefix:  media.UserFolderPrefix,
			Cloudinary: Cloudinary{
				CloudName: media.Cloudinary.CloudName,
				APIKey:    media.Cloudinary.APIKey,
				APISecret: media.Cloudinary.APISecret,
				BaseURL:   media.Cloudinary.BaseURL,
			},
			S3: S3{
				Endpoint:        media.S3.Endpoint,
				Region:          media.S3.Region,
				Bucket:          media.S3.Bucket,
				AccessKeyID:     media.S3.AccessKeyID,
				SecretAccessKey: media.S3.SecretAccessKey,
				PublicBaseURL:   media.S3.PublicBaseURL,
				UsePathStyle:    media.S3.UsePathStyle,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
			PendingTTL:    time.Duration(jsonCfg.Workers.PendingTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
