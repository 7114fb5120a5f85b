// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortKey selects the ordering of a listing.
type SortKey string

const (
	// SortNatural keeps the store's natural (insertion) order.
	SortNatural   SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// Listing defaults.
const (
	DefaultPage     uint64 = 1
	DefaultPageSize uint64 = 10
)

// ListParams holds the raw listing query parameters. A nil field means the
// parameter was absent from the request; a non-nil field holds the value
// exactly as it was sent.
type ListParams struct {
	Title    *string
	PriceMin *string
	PriceMax *string
	Sort     *string
	Page     *string
	Limit    *string
}

// QuerySpec is the validated, request-scoped listing specification.
type QuerySpec struct {
	// Title is matched case-insensitively as a substring of the offer title.
	Title *string

	// PriceMin and PriceMax bound the price inclusively.
	PriceMin *float64
	PriceMax *float64

	Sort     SortKey
	Page     uint64
	PageSize uint64
}

// Offset returns the number of offers to skip.
func (q QuerySpec) Offset() uint64 {
	if q.Page == 0 {
		return 0
	}

	return q.PageSize * (q.Page - 1)
}
