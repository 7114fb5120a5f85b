// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api"
)

// mapAPIError converts the error reported in a Cloudinary result body into
// one of the package sentinels, keeping the message as detail. The SDK does
// not expose the HTTP status, so the message is classified instead.
func mapAPIError(resp api.ErrorResp) error {
	if resp.Message == "" {
		return nil
	}

	msg := strings.ToLower(resp.Message)
	switch {
	case strings.Contains(msg, "signature"),
		strings.Contains(msg, "api_key"),
		strings.Contains(msg, "api key"),
		strings.Contains(msg, "invalid credentials"),
		strings.Contains(msg, "not allowed"):
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Message)
	case strings.Contains(msg, "not found"):
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Message)
	case strings.Contains(msg, "rate limit"):
		return fmt.Errorf("%w: %s", ErrRateLimited, resp.Message)
	default:
		return fmt.Errorf("%w: %s", ErrBadRequest, resp.Message)
	}
}
