// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error of this package.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type for validation", ErrValidation)
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", ErrValidation)

	ErrMissingCredentials = fmt.Errorf("%w: username, email and password are required", ErrValidation)

	ErrInvalidTitle       = fmt.Errorf("%w: title must be 1 to 50 characters", ErrValidation)
	ErrInvalidDescription = fmt.Errorf("%w: description must be 1 to 500 characters", ErrValidation)
	ErrInvalidPrice       = fmt.Errorf("%w: price must be a number between 0 and 10000", ErrValidation)
	ErrMissingDetail      = fmt.Errorf("%w: brand, size, condition, color and city are required", ErrValidation)
	ErrMissingImage       = fmt.Errorf("%w: picture is required", ErrValidation)
	ErrNotAnImage         = fmt.Errorf("%w: picture must be an image", ErrValidation)

	ErrInvalidTitleFilter = fmt.Errorf("%w: title filter must not be empty", ErrValidation)
	ErrInvalidPriceFilter = fmt.Errorf("%w: price bounds must be non-negative numbers", ErrValidation)
	ErrInvalidPriceRange  = fmt.Errorf("%w: priceMin must not exceed priceMax", ErrValidation)
	ErrInvalidSort        = fmt.Errorf("%w: sort must be price-asc or price-desc", ErrValidation)
	ErrInvalidPage        = fmt.Errorf("%w: page must be a positive integer", ErrValidation)
	ErrInvalidLimit       = fmt.Errorf("%w: limit must be a positive integer", ErrValidation)
)
