// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a marketplace account as it is persisted in the
// credential store. It carries credential secrets (Hash, Salt, Token) and
// therefore must never be written to a client directly; use [User.Export]
// or [User.Owner] instead.
type User struct {
	// UserID is the unique identifier of the account (UUID v7 string).
	UserID string `json:"_id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Account holds the public profile of the user.
	Account Account `json:"account"`

	// Newsletter reports whether the user opted in to the newsletter.
	Newsletter bool `json:"newsletter"`

	// Token is the long-lived bearer token issued once at signup.
	// It is reused at every login and never rotated.
	Token string `json:"-"`

	// Hash is base64(SHA256(password + Salt)).
	Hash string `json:"-"`

	// Salt is the random per-user salt mixed into Hash.
	Salt string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// Account is the public profile part of a [User].
type Account struct {
	// Username is the display name shown next to offers.
	Username string `json:"username"`

	// Avatar is the media handle of the profile picture, nil until one is
	// attached.
	Avatar *MediaHandle `json:"avatar,omitempty"`
}

// PublicUser is the view of a [User] returned by signup and login.
// Hash and Salt are stripped; the token is included so the client can
// authenticate subsequent requests.
type PublicUser struct {
	UserID  string  `json:"_id"`
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// Owner is the view of a [User] inlined into an offer.
// It carries no credential material at all.
type Owner struct {
	UserID  string  `json:"_id"`
	Account Account `json:"account"`
}

// Export returns the client-facing view of the user.
func (u User) Export() PublicUser {
	return PublicUser{
		UserID:  u.UserID,
		Token:   u.Token,
		Account: u.Account,
	}
}

// Owner returns the view of the user that is inlined into offers.
func (u User) Owner() Owner {
	return Owner{
		UserID:  u.UserID,
		Account: u.Account,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest carries signup input as received from the transport layer.
type RegisterRequest struct {
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Newsletter bool   `json:"newsletter"`

	// Avatar is the optional profile picture.
	Avatar *Upload `json:"-"`
}

// LoginRequest carries login input.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
