// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/media"
	"github.com/MKhiriev/go-resale-market/internal/store"
	"github.com/MKhiriev/go-resale-market/internal/utils"
	"github.com/MKhiriev/go-resale-market/internal/validators"
	"github.com/MKhiriev/go-resale-market/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and bearer token
// resolution using a UserRepository for persistence and salted SHA-256 for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mediaStore keeps the optional avatar uploaded at signup.
	mediaStore media.Store

	validator validators.Validator
	ids       *utils.UUIDGenerator

	// userFolderPrefix is prepended to the user id to name the avatar folder.
	userFolderPrefix string

	// randomString generates salts and tokens.
	randomString func(n int) (string, error)

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and media store.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mediaStore media.Store, validator validators.Validator, cfg config.Media, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		mediaStore:       mediaStore,
		validator:        validator,
		ids:              utils.NewUUIDGenerator(),
		userFolderPrefix: cfg.UserFolderPrefix,
		randomString:     utils.RandomString,
		logger:           logger.Component("auth-service"),
	}
}

// Register creates a new user account.
//
// A random salt and a random bearer token are generated, the password is
// stored as base64(SHA256(password + salt)), and the record is persisted.
// Only then is the optional avatar uploaded and linked. A failing avatar
// upload does not fail the signup: the account stays usable without one.
//
// Returns the public view of the user or:
//   - ErrInvalidDataProvided if username, email or password is empty or the
//     avatar is not an image.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid signup data provided")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	salt, err := a.randomString(utils.CredentialLength)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("error generating salt: %w", err)
	}
	token, err := a.randomString(utils.CredentialLength)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("error generating token: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:     a.ids.Generate(),
		Email:      req.Email,
		Account:    models.Account{Username: req.Username},
		Newsletter: req.Newsletter,
		Token:      token,
		Hash:       utils.HashPassword(req.Password, salt),
		Salt:       salt,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if req.Avatar != nil {
		if avatar, ok := a.attachAvatar(ctx, user.UserID, *req.Avatar); ok {
			user.Account.Avatar = &avatar
		}
	}

	return user.Export(), nil
}

// attachAvatar uploads the avatar and links it to userID. Failures are
// logged and reported as ok == false.
func (a *authService) attachAvatar(ctx context.Context, userID string, avatar models.Upload) (models.MediaHandle, bool) {
	log := logger.FromContext(ctx).With().
		Str("func", "*authService.attachAvatar").
		Str("user_id", userID).
		Logger()

	handle, err := a.mediaStore.Upload(ctx, models.UploadInput{
		Upload: avatar,
		Folder: a.userFolderPrefix + userID,
	})
	if err != nil {
		log.Warn().Err(err).Msg("avatar upload failed, user kept without avatar")
		return models.MediaHandle{}, false
	}

	if err = a.userRepository.SetAvatar(ctx, userID, handle); err != nil {
		log.Warn().Err(err).Msg("saving avatar failed, user kept without avatar")
		if _, derr := a.mediaStore.Destroy(ctx, handle.PublicID); derr != nil {
			log.Warn().Err(derr).Str("public_id", handle.PublicID).Msg("orphaned avatar left in media store")
		}
		return models.MediaHandle{}, false
	}

	return handle, true
}

// Login authenticates an existing user by email and password.
//
// The token issued at signup is returned unchanged.
//
// Returns the public view of the user or:
//   - A wrapped store.ErrNoUserWasFound if no account uses the email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.PublicUser{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, user.Salt, user.Hash) {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.PublicUser{}, ErrWrongPassword
	}

	return user.Export(), nil
}

// Authenticate resolves a bearer token by exact match.
//
// Returns ErrUnauthorized for an empty or unknown token and a wrapped
// storage error for any other lookup failure.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUnauthorized
		}
		logger.FromContext(ctx).Err(err).Msg("token lookup failed")
		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	return user, nil
}
