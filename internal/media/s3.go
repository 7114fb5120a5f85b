// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/utils"
	"github.com/MKhiriev/go-resale-market/models"
)

// s3API is the subset of *s3.Client used by s3Store.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// s3Store keeps media objects in an S3-compatible bucket. Folders are key
// prefixes, so they vanish with their last object.
type s3Store struct {
	client  s3API
	bucket  string
	baseURL string
	ids     utils.UUIDGenerator
	logger  *logger.Logger
}

// NewS3Store returns a [Store] writing to cfg.Bucket.
func NewS3Store(ctx context.Context, cfg config.S3, log *logger.Logger) (Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3Store(client, cfg, log), nil
}

func newS3Store(client s3API, cfg config.S3, log *logger.Logger) *s3Store {
	return &s3Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		logger:  log.Component("media-s3"),
	}
}

// Upload implements [Store]. The object key is the folder followed by a
// fresh UUID and the original file extension.
func (s *s3Store) Upload(ctx context.Context, in models.UploadInput) (models.MediaHandle, error) {
	if len(in.Data) == 0 {
		return models.MediaHandle{}, ErrEmptyUpload
	}

	folder := strings.Trim(in.Folder, "/")
	key := path.Join(folder, s.ids.Generate()+strings.ToLower(path.Ext(in.Filename)))

	contentType := in.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(in.Data)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(in.Data),
		ContentLength: aws.Int64(int64(len(in.Data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3Store.Upload").Str("key", key).Msg("put object failed")
		return models.MediaHandle{}, fmt.Errorf("%w: put object: %w", ErrUnavailable, err)
	}

	url := s.baseURL + "/" + key
	return models.MediaHandle{
		PublicID:  key,
		URL:       url,
		SecureURL: url,
		Folder:    folder,
	}, nil
}

// Destroy implements [Store]. S3 deletes are idempotent, so the object is
// checked first to report "not found" the same way Cloudinary does.
func (s *s3Store) Destroy(ctx context.Context, publicID string) (models.DestroyResult, error) {
	if publicID == "" {
		return models.DestroyResult{}, ErrEmptyPublicID
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		if isS3NotFound(err) {
			return models.DestroyResult{Result: models.DestroyResultNotFound}, nil
		}
		return models.DestroyResult{}, fmt.Errorf("%w: head object: %w", ErrUnavailable, err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return models.DestroyResult{}, fmt.Errorf("%w: delete object: %w", ErrUnavailable, err)
	}

	return models.DestroyResult{Result: models.DestroyResultOK}, nil
}

// ListFolder implements [Store].
func (s *s3Store) ListFolder(ctx context.Context, folder string) (models.FolderListing, error) {
	folder = strings.Trim(folder, "/")
	listing := models.FolderListing{Resources: []models.MediaHandle{}}

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(folder + "/"),
	}
	for {
		out, err := s.client.ListObjectsV2(ctx, input)
		if err != nil {
			return models.FolderListing{}, fmt.Errorf("%w: list objects: %w", ErrUnavailable, err)
		}

		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			url := s.baseURL + "/" + key
			listing.Resources = append(listing.Resources, models.MediaHandle{
				PublicID:  key,
				URL:       url,
				SecureURL: url,
				Folder:    folder,
			})
		}

		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			break
		}
		input.ContinuationToken = out.NextContinuationToken
	}

	listing.TotalCount = len(listing.Resources)
	return listing, nil
}

// DeleteFolder implements [Store]. Prefixes have no existence of their own,
// so there is nothing left to remove once the folder is empty.
func (s *s3Store) DeleteFolder(ctx context.Context, folder string) error {
	return nil
}

func isS3NotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.ErrorCode() {
	case "NotFound", "NoSuchKey":
		return true
	default:
		return false
	}
}

func publicBaseURL(cfg config.S3) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return "https://" + cfg.Bucket + ".s3." + cfg.Region + ".amazonaws.com"
}
