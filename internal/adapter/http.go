// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/utils"
	"github.com/MKhiriev/go-resale-market/models"
)

const pictureField = "picture"

type httpMarketAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPMarketAdapter constructs an HTTP implementation of [MarketAdapter].
// address may omit the scheme, in which case http is assumed.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPMarketAdapter(address string, timeout time.Duration, logger *logger.Logger) (MarketAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpMarketAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger.Component("market-adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpMarketAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpMarketAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpMarketAdapter) Signup(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	var user models.PublicUser

	r := h.client.R().SetContext(ctx).SetResult(&user)
	if req.Avatar != nil {
		r.SetMultipartFormData(map[string]string{
			"username":   req.Username,
			"email":      req.Email,
			"password":   req.Password,
			"newsletter": strconv.FormatBool(req.Newsletter),
		})
		attach(r, *req.Avatar)
	} else {
		r.SetHeader("Content-Type", "application/json").SetBody(req)
	}

	resp, err := r.Post("/user/signup")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetToken(user.Token)
	h.logger.Debug().Str("user_id", user.UserID).Msg("signed up")

	return user, nil
}

func (h *httpMarketAdapter) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/user/login")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetToken(user.Token)
	return user, nil
}

func (h *httpMarketAdapter) Publish(ctx context.Context, form models.OfferForm, picture models.Upload) (models.Offer, error) {
	var offer models.Offer

	r := h.authedRequest(ctx).
		SetMultipartFormData(offerFormData(form)).
		SetResult(&offer)
	attach(r, picture)

	resp, err := r.Post("/offers/publish")
	if err != nil {
		return models.Offer{}, fmt.Errorf("publish request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Offer{}, err
	}

	return offer, nil
}

func (h *httpMarketAdapter) UpdateOffer(ctx context.Context, offerID string, form models.OfferForm, picture *models.Upload) (models.Offer, error) {
	var offer models.Offer

	r := h.authedRequest(ctx).
		SetPathParam("id", offerID).
		SetMultipartFormData(offerFormData(form)).
		SetResult(&offer)
	if picture != nil {
		attach(r, *picture)
	}

	resp, err := r.Put("/offers/{id}")
	if err != nil {
		return models.Offer{}, fmt.Errorf("update offer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Offer{}, err
	}

	return offer, nil
}

func (h *httpMarketAdapter) DeleteOffer(ctx context.Context, offerID string) (string, error) {
	var msg models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", offerID).
		SetResult(&msg).
		Delete("/offers/{id}")
	if err != nil {
		return "", fmt.Errorf("delete offer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpMarketAdapter) ListOffers(ctx context.Context, params models.ListParams) ([]models.Offer, error) {
	var offers []models.Offer

	r := h.client.R().SetContext(ctx).SetResult(&offers)
	for key, value := range map[string]*string{
		"title":    params.Title,
		"priceMin": params.PriceMin,
		"priceMax": params.PriceMax,
		"sort":     params.Sort,
		"page":     params.Page,
		"limit":    params.Limit,
	} {
		if value != nil {
			r.SetQueryParam(key, *value)
		}
	}

	resp, err := r.Get("/offers")
	if err != nil {
		return nil, fmt.Errorf("list offers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return offers, nil
}

func (h *httpMarketAdapter) GetOffer(ctx context.Context, offerID string) (models.Offer, error) {
	var offer models.Offer

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", offerID).
		SetResult(&offer).
		Get("/offers/{id}")
	if err != nil {
		return models.Offer{}, fmt.Errorf("get offer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Offer{}, err
	}

	return offer, nil
}

func (h *httpMarketAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func offerFormData(form models.OfferForm) map[string]string {
	return map[string]string{
		"title":       form.Title,
		"description": form.Description,
		"price":       form.Price,
		"brand":       form.Brand,
		"size":        form.Size,
		"condition":   form.Condition,
		"color":       form.Color,
		"city":        form.City,
	}
}

func attach(r *resty.Request, upload models.Upload) {
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	r.SetMultipartField(pictureField, upload.Filename, contentType, bytes.NewReader(upload.Data))
}
