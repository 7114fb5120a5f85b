// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks marketplace input before it reaches the stores.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values, with
//     optional field-level scoping for targeted validation.
//   - Parse functions (ParseOfferForm, ParseListParams) turn raw transport
//     strings into typed models and reject malformed values on the way.
//
// Every error returned by this package wraps [ErrValidation], so callers can
// classify it with a single errors.Is check.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
