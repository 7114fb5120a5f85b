// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-resale-market/models"
)

func ptr(s string) *string { return &s }

func TestParseOfferForm(t *testing.T) {
	form := models.OfferForm{
		Title:       "Sneakers",
		Description: "Barely worn",
		Price:       " 42.50 ",
		Brand:       "Nike",
		Size:        "44",
		Condition:   "Good",
		Color:       "White",
		City:        "Lyon",
	}

	got, err := ParseOfferForm(form)
	require.NoError(t, err)
	assert.Equal(t, 42.5, got.Price)
	assert.Equal(t, "Lyon", got.City)

	for _, raw := range []string{"", "abc", "NaN", "Inf"} {
		form.Price = raw
		_, err = ParseOfferForm(form)
		assert.ErrorIs(t, err, ErrInvalidPrice, raw)
	}
}

func TestParseListParams_Defaults(t *testing.T) {
	got, err := ParseListParams(models.ListParams{})

	require.NoError(t, err)
	assert.Equal(t, models.QuerySpec{Page: 1, PageSize: 10}, got)
	assert.Equal(t, uint64(0), got.Offset())
}

func TestParseListParams_Valid(t *testing.T) {
	got, err := ParseListParams(models.ListParams{
		Title:    ptr("Jean"),
		PriceMin: ptr("10"),
		PriceMax: ptr("10"),
		Sort:     ptr("price-desc"),
		Page:     ptr("2"),
		Limit:    ptr("3.0"),
	})

	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "Jean", *got.Title)
	assert.Equal(t, 10.0, *got.PriceMin)
	assert.Equal(t, 10.0, *got.PriceMax)
	assert.Equal(t, models.SortPriceDesc, got.Sort)
	assert.Equal(t, uint64(2), got.Page)
	assert.Equal(t, uint64(3), got.PageSize)
	assert.Equal(t, uint64(3), got.Offset())
}

func TestParseListParams_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params models.ListParams
		want   error
	}{
		{name: "empty title", params: models.ListParams{Title: ptr("")}, want: ErrInvalidTitleFilter},
		{name: "min above max", params: models.ListParams{PriceMin: ptr("10"), PriceMax: ptr("5")}, want: ErrInvalidPriceRange},
		{name: "negative min", params: models.ListParams{PriceMin: ptr("-1")}, want: ErrInvalidPriceFilter},
		{name: "non numeric max", params: models.ListParams{PriceMax: ptr("cheap")}, want: ErrInvalidPriceFilter},
		{name: "unknown sort", params: models.ListParams{Sort: ptr("date-asc")}, want: ErrInvalidSort},
		{name: "empty sort", params: models.ListParams{Sort: ptr("")}, want: ErrInvalidSort},
		{name: "page zero", params: models.ListParams{Page: ptr("0")}, want: ErrInvalidPage},
		{name: "fractional page", params: models.ListParams{Page: ptr("1.5")}, want: ErrInvalidPage},
		{name: "negative limit", params: models.ListParams{Limit: ptr("-3")}, want: ErrInvalidLimit},
		{name: "text limit", params: models.ListParams{Limit: ptr("ten")}, want: ErrInvalidLimit},
		{name: "limit at 2^63", params: models.ListParams{Limit: ptr("9223372036854775808")}, want: ErrInvalidLimit},
		{name: "offset wraps", params: models.ListParams{Page: ptr("5"), Limit: ptr("4611686018427387904")}, want: ErrInvalidPage},
		{name: "offset above bigint", params: models.ListParams{Page: ptr("3"), Limit: ptr("4611686018427387904")}, want: ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseListParams(tt.params)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestParseListParams_LargestOffset(t *testing.T) {
	// 2^62 * (2 - 1) still fits into bigint
	got, err := ParseListParams(models.ListParams{Page: ptr("2"), Limit: ptr("4611686018427387904")})

	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<62, got.Offset())
}

func TestParseListParams_OnlyOneBound(t *testing.T) {
	got, err := ParseListParams(models.ListParams{PriceMax: ptr("0")})

	require.NoError(t, err)
	assert.Nil(t, got.PriceMin)
	assert.Equal(t, 0.0, *got.PriceMax)
}
