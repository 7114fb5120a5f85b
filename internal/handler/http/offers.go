// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-resale-market/internal/app"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/service"
	"github.com/MKhiriev/go-resale-market/internal/utils"
	"github.com/MKhiriev/go-resale-market/internal/validators"
	"github.com/MKhiriev/go-resale-market/models"
)

// readOfferInput reads the multipart offer form and its optional picture.
// Form values are returned as sent.
func (h *Handler) readOfferInput(w http.ResponseWriter, r *http.Request) (models.OfferForm, *models.Upload, error) {
	if err := h.parseForm(w, r); err != nil {
		return models.OfferForm{}, nil, err
	}

	picture, err := readUpload(r, pictureField)
	if err != nil {
		return models.OfferForm{}, nil, err
	}

	return readOfferForm(r), picture, nil
}

func (h *Handler) publishOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	form, picture, err := h.readOfferInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	fields, err := validators.ParseOfferForm(form)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	offer, err := h.services.OfferService.Create(ctx, fields, picture, user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("offer_id", offer.OfferID).Str("owner_id", user.UserID).Msg("offer published")
	utils.WriteJSON(w, offer, http.StatusCreated)
}

func (h *Handler) updateOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	form, picture, err := h.readOfferInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	offer, err := h.services.OfferService.Update(ctx, chi.URLParam(r, "id"), form, picture, user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, offer, http.StatusOK)
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.OfferService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := app.MsgOfferDeleted
	if !result.PictureDeleted {
		message = app.MsgPictureNotDeleted
	}

	utils.WriteMessage(w, message, http.StatusOK)
}

func (h *Handler) listOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.services.ListingService.List(r.Context(), readListParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if offers == nil {
		offers = []models.Offer{}
	}

	utils.WriteJSON(w, offers, http.StatusOK)
}

func (h *Handler) getOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.services.ListingService.GetOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, offer, http.StatusOK)
}
