// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// marketplace server handlers and middleware.
//
// All Msg* constants are the human-readable strings written into HTTP
// response bodies. Existing clients match on some of them, so the wording
// must not change.
package app

const (
	// MsgInvalidRequest is returned when the request body cannot be decoded
	// or fails validation.
	MsgInvalidRequest = "Invalid request"

	// MsgUnauthorized is returned when a bearer token is missing or unknown,
	// and when a login password does not match.
	MsgUnauthorized = "Unauthorized"

	// MsgEmailAlreadyRegistered is returned when signup uses an email that
	// already has an account.
	MsgEmailAlreadyRegistered = "User already registered with this email address"

	// MsgUserNotFound is returned when login uses an unknown email.
	MsgUserNotFound = "User not found"

	// MsgOfferNotFound is returned when the offer of the route does not
	// exist.
	MsgOfferNotFound = "Offer not found"

	// MsgOfferDeleted is returned once an offer and its picture are removed.
	MsgOfferDeleted = "Offer successfully deleted"

	// MsgPictureNotDeleted is returned when the offer record was removed but
	// the media store did not confirm the removal of its picture.
	MsgPictureNotDeleted = "Picture not deleted"

	// MsgPageNotFound is returned for every unknown route.
	MsgPageNotFound = "Page not found"
)
