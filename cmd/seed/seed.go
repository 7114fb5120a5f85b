// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-resale-market/internal/adapter"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/models"
)

// seedFile describes the demo data pushed to a running server. Picture
// paths are relative to the seed file.
type seedFile struct {
	User struct {
		Username   string `json:"username"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Newsletter bool   `json:"newsletter"`
		Avatar     string `json:"avatar"`
	} `json:"user"`
	Offers []seedOffer `json:"offers"`
}

type seedOffer struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Brand       string `json:"brand"`
	Size        string `json:"size"`
	Condition   string `json:"condition"`
	Color       string `json:"color"`
	City        string `json:"city"`
	Picture     string `json:"picture"`
}

func (o seedOffer) form() models.OfferForm {
	return models.OfferForm{
		Title:       o.Title,
		Description: o.Description,
		Price:       o.Price,
		Brand:       o.Brand,
		Size:        o.Size,
		Condition:   o.Condition,
		Color:       o.Color,
		City:        o.City,
	}
}

func loadSeed(path string) (seedFile, error) {
	var seed seedFile

	raw, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("error reading seed file: %w", err)
	}
	if err = json.Unmarshal(raw, &seed); err != nil {
		return seed, fmt.Errorf("error decoding seed file: %w", err)
	}

	return seed, nil
}

type seeder struct {
	market   adapter.MarketAdapter
	baseDir  string
	readFile func(string) ([]byte, error)
	logger   *logger.Logger
}

// run logs the seed user in, signing it up first when the email is
// unknown, then publishes every offer. It stops at the first failure.
func (s *seeder) run(ctx context.Context, seed seedFile) (int, error) {
	user, err := s.market.Login(ctx, models.LoginRequest{Email: seed.User.Email, Password: seed.User.Password})
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		req := models.RegisterRequest{
			Username:   seed.User.Username,
			Email:      seed.User.Email,
			Password:   seed.User.Password,
			Newsletter: seed.User.Newsletter,
		}
		if seed.User.Avatar != "" {
			avatar, err := s.upload(seed.User.Avatar)
			if err != nil {
				return 0, err
			}
			req.Avatar = &avatar
		}
		if user, err = s.market.Signup(ctx, req); err != nil {
			return 0, fmt.Errorf("signup failed: %w", err)
		}
		s.logger.Info().Str("user_id", user.UserID).Msg("seed user created")
	case err != nil:
		return 0, fmt.Errorf("login failed: %w", err)
	}

	published := 0
	for _, o := range seed.Offers {
		picture, err := s.upload(o.Picture)
		if err != nil {
			return published, err
		}

		offer, err := s.market.Publish(ctx, o.form(), picture)
		if err != nil {
			return published, fmt.Errorf("publishing %q failed: %w", o.Title, err)
		}
		published++
		s.logger.Info().Str("offer_id", offer.OfferID).Str("title", offer.Title).Msg("offer published")
	}

	return published, nil
}

func (s *seeder) upload(path string) (models.Upload, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}

	data, err := s.readFile(path)
	if err != nil {
		return models.Upload{}, fmt.Errorf("error reading picture: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return models.Upload{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}
