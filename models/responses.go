// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic JSON body used for informational replies
// and for most errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned by the authentication guard.
// Existing clients read the "error" key on 401 replies, so the shape is kept
// apart from [MessageResponse].
type ErrorResponse struct {
	Error string `json:"error"`
}
