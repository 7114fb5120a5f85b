// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-resale-market/models"
)

// ParseOfferForm converts the raw form values of an offer into typed
// fields. Only the price needs conversion; range and length rules are
// checked by [MarketValidator].
func ParseOfferForm(form models.OfferForm) (models.OfferFields, error) {
	price, err := parseNumber(form.Price)
	if err != nil {
		return models.OfferFields{}, ErrInvalidPrice
	}

	return models.OfferFields{
		Title:       form.Title,
		Description: form.Description,
		Price:       price,
		Brand:       form.Brand,
		Size:        form.Size,
		Condition:   form.Condition,
		Color:       form.Color,
		City:        form.City,
	}, nil
}

// ParseListParams validates raw listing parameters and builds the listing
// specification. Absent parameters take their defaults; present ones must
// be well formed even when empty.
func ParseListParams(p models.ListParams) (models.QuerySpec, error) {
	spec := models.QuerySpec{
		Page:     models.DefaultPage,
		PageSize: models.DefaultPageSize,
	}

	if p.Title != nil {
		if *p.Title == "" {
			return models.QuerySpec{}, ErrInvalidTitleFilter
		}
		title := *p.Title
		spec.Title = &title
	}

	var err error
	if spec.PriceMin, err = parsePriceBound(p.PriceMin); err != nil {
		return models.QuerySpec{}, err
	}
	if spec.PriceMax, err = parsePriceBound(p.PriceMax); err != nil {
		return models.QuerySpec{}, err
	}
	if spec.PriceMin != nil && spec.PriceMax != nil && *spec.PriceMin > *spec.PriceMax {
		return models.QuerySpec{}, ErrInvalidPriceRange
	}

	if p.Sort != nil {
		switch sort := models.SortKey(*p.Sort); sort {
		case models.SortPriceAsc, models.SortPriceDesc:
			spec.Sort = sort
		default:
			return models.QuerySpec{}, ErrInvalidSort
		}
	}

	if p.Page != nil {
		if spec.Page, err = parsePositiveInt(*p.Page); err != nil {
			return models.QuerySpec{}, ErrInvalidPage
		}
	}
	if p.Limit != nil {
		if spec.PageSize, err = parsePositiveInt(*p.Limit); err != nil {
			return models.QuerySpec{}, ErrInvalidLimit
		}
	}
	if !offsetFits(spec.Page, spec.PageSize) {
		return models.QuerySpec{}, ErrInvalidPage
	}

	return spec, nil
}

// offsetFits reports whether the row offset of page stays within a signed
// 64-bit SQL integer.
func offsetFits(page, pageSize uint64) bool {
	hi, lo := bits.Mul64(pageSize, page-1)
	return hi == 0 && lo <= math.MaxInt64
}

func parsePriceBound(raw *string) (*float64, error) {
	if raw == nil {
		return nil, nil
	}

	v, err := parseNumber(*raw)
	if err != nil || v < 0 {
		return nil, ErrInvalidPriceFilter
	}

	return &v, nil
}

// parsePositiveInt accepts integral numbers written either way, e.g. "2"
// or "2.0".
func parsePositiveInt(raw string) (uint64, error) {
	v, err := parseNumber(raw)
	if err != nil || v < 1 || v != math.Trunc(v) || v >= math.MaxInt64 {
		return 0, ErrValidation
	}

	return uint64(v), nil
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}

	return v, nil
}
