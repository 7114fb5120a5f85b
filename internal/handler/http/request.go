// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-resale-market/models"
)

// pictureField is the multipart field carrying offer pictures and avatars.
const pictureField = "picture"

// defaultMaxUploadSize is used when the handler was built without a limit.
const defaultMaxUploadSize = 10 << 20

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// parseForm reads a multipart or urlencoded body, capped at
// h.maxUploadSize bytes.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	limit := h.maxUploadSize
	if limit <= 0 {
		limit = defaultMaxUploadSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	var err error
	if mediaType(r) == "multipart/form-data" {
		err = r.ParseMultipartForm(limit)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return nil
}

// decodeJSON decodes a JSON body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}

// readUpload returns the file sent in field, or nil when there is none.
// It must be called after parseForm.
func readUpload(r *http.Request, field string) (*models.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return &models.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readOfferForm(r *http.Request) models.OfferForm {
	return models.OfferForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Brand:       r.FormValue("brand"),
		Size:        r.FormValue("size"),
		Condition:   r.FormValue("condition"),
		Color:       r.FormValue("color"),
		City:        r.FormValue("city"),
	}
}

// readListParams keeps the distinction between an absent and an empty
// query parameter.
func readListParams(r *http.Request) models.ListParams {
	query := r.URL.Query()
	param := func(key string) *string {
		if !query.Has(key) {
			return nil
		}
		v := query.Get(key)
		return &v
	}

	return models.ListParams{
		Title:    param("title"),
		PriceMin: param("priceMin"),
		PriceMax: param("priceMax"),
		Sort:     param("sort"),
		Page:     param("page"),
		Limit:    param("limit"),
	}
}
