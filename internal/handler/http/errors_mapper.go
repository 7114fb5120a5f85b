// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-resale-market/internal/app"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/media"
	"github.com/MKhiriev/go-resale-market/internal/service"
	"github.com/MKhiriev/go-resale-market/internal/store"
	"github.com/MKhiriev/go-resale-market/internal/utils"
	"github.com/MKhiriev/go-resale-market/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	validators.ErrValidation:       http.StatusBadRequest,
	ErrMalformedBody:               http.StatusBadRequest,

	service.ErrWrongPassword: http.StatusUnauthorized,
	service.ErrUnauthorized:  http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrOfferNotFound:      http.StatusNotFound,

	service.ErrMediaAttachFailed: http.StatusInternalServerError,
	media.ErrUnavailable:         http.StatusInternalServerError,
	media.ErrUnauthorized:        http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the public message of the client errors. Server
// errors carry the underlying error text instead.
var errorMessageMap = map[error]string{
	store.ErrEmailAlreadyExists: app.MsgEmailAlreadyRegistered,
	store.ErrNoUserWasFound:     app.MsgUserNotFound,
	store.ErrOfferNotFound:      app.MsgOfferNotFound,
}

// statusMessages is the fallback public message per client status.
var statusMessages = map[int]string{
	http.StatusBadRequest:   app.MsgInvalidRequest,
	http.StatusUnauthorized: app.MsgUnauthorized,
}

func statusFromError(err error) int {
	// not-found wins over the generic wrappers, e.g. an attach on a
	// concurrently deleted offer
	for _, target := range []error{store.ErrOfferNotFound, store.ErrNoUserWasFound} {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if message, ok := statusMessages[status]; ok {
		return message
	}
	return err.Error()
}

// writeError logs err and writes it as {"message": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err, status), status)
}
