// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import "errors"

var (
	ErrEmptyUpload       = errors.New("upload has no data")
	ErrEmptyPublicID     = errors.New("public id is empty")
	ErrBadRequest        = errors.New("media store rejected the request")
	ErrUnauthorized      = errors.New("media store credentials rejected")
	ErrNotFound          = errors.New("media object not found")
	ErrRateLimited       = errors.New("media store rate limit reached")
	ErrUnavailable       = errors.New("media store unavailable")
	ErrUnknownProvider   = errors.New("unknown media provider")
	ErrMalformedResponse = errors.New("malformed media store response")
)
