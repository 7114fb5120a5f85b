// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-resale-market/internal/app"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/service"
	"github.com/MKhiriev/go-resale-market/internal/utils"
	"github.com/MKhiriev/go-resale-market/models"
)

var unauthorizedResponse = models.ErrorResponse{Error: app.MsgUnauthorized}

// auth is the access guard of the mutating offer routes.
//
// It reads the "Authorization" header, removes the "Bearer " prefix and
// resolves the remaining token through [service.AuthService.Authenticate].
// On success the user is stored in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// A missing header or an unknown token is rejected with HTTP 401 and
// {"error":"Unauthorized"}. A failing lookup is reported as HTTP 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, unauthorizedResponse, http.StatusUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteJSON(w, unauthorizedResponse, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				log.Debug().Msg("unknown token")
				utils.WriteJSON(w, unauthorizedResponse, http.StatusUnauthorized)
				return
			}
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader strips the "Bearer " prefix from a raw
// "Authorization" header value. A value without the prefix is used as the
// token as is.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
