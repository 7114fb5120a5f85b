// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/utils"
	"github.com/MKhiriev/go-resale-market/models"
)

// signupJSON accepts newsletter both as a boolean and as the "true" string
// sent by form-based clients.
type signupJSON struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Newsletter any    `json:"newsletter"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if mediaType(r) == "application/json" {
		var body signupJSON
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, r, err)
			return
		}
		req = models.RegisterRequest{
			Username:   body.Username,
			Email:      body.Email,
			Password:   body.Password,
			Newsletter: body.Newsletter == true || body.Newsletter == "true",
		}
	} else {
		if err := h.parseForm(w, r); err != nil {
			writeError(w, r, err)
			return
		}
		avatar, err := readUpload(r, pictureField)
		if err != nil {
			writeError(w, r, err)
			return
		}
		req = models.RegisterRequest{
			Username:   r.FormValue("username"),
			Email:      r.FormValue("email"),
			Password:   r.FormValue("password"),
			Newsletter: r.FormValue("newsletter") == "true",
			Avatar:     avatar,
		}
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user signed up")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if mediaType(r) == "application/json" {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
	} else {
		if err := h.parseForm(w, r); err != nil {
			writeError(w, r, err)
			return
		}
		req = models.LoginRequest{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, user, http.StatusOK)
}
