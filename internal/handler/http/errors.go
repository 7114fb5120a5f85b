// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when nothing is left of the header once the
	// "Bearer " prefix is removed.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// ErrMalformedBody is returned when a request body cannot be decoded as
// JSON, a form or a multipart form.
var ErrMalformedBody = errors.New("malformed request body")
