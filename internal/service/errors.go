// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every input validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrUnauthorized is returned when a bearer token does not resolve to
	// a user.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMediaAttachFailed is returned when a picture could not be stored
	// or linked to its offer.
	ErrMediaAttachFailed = errors.New("offer picture could not be attached")
)
