// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferDetail_JSON(t *testing.T) {
	d := OfferDetail{Key: DetailCondition, Value: "neuf"}

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ÉTAT":"neuf"}`, string(b))

	var got OfferDetail
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, d, got)
}

func TestOfferDetail_UnmarshalRejectsManyKeys(t *testing.T) {
	var d OfferDetail
	assert.Error(t, json.Unmarshal([]byte(`{"a":"1","b":"2"}`), &d))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &d))
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &d))
}

func TestOfferFields_DetailsOrder(t *testing.T) {
	f := OfferFields{Brand: "Levi's", Size: "M", Condition: "bon", Color: "bleu", City: "Paris"}

	b, err := json.Marshal(f.Details())
	require.NoError(t, err)

	// порядок ключей важен для клиентов
	assert.Equal(t,
		`[{"MARQUE":"Levi's"},{"TAILLE":"M"},{"ÉTAT":"bon"},{"COULEUR":"bleu"},{"EMPLACEMENT":"Paris"}]`,
		string(b))
}

func TestOfferDetails_ValueScan(t *testing.T) {
	details := OfferDetails{{Key: DetailBrand, Value: "Nike"}, {Key: DetailSize, Value: "42"}}

	v, err := details.Value()
	require.NoError(t, err)

	tests := []struct {
		name string
		src  any
		want OfferDetails
	}{
		{name: "string column", src: v, want: details},
		{name: "bytes column", src: []byte(v.(string)), want: details},
		{name: "null column", src: nil, want: OfferDetails{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got OfferDetails
			require.NoError(t, got.Scan(tt.src))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOfferDetails_NilValue(t *testing.T) {
	var details OfferDetails

	v, err := details.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestOfferDetails_ScanErrors(t *testing.T) {
	var d OfferDetails
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("not json"))
}

func TestQuerySpec_Offset(t *testing.T) {
	tests := []struct {
		name string
		spec QuerySpec
		want uint64
	}{
		{name: "first page", spec: QuerySpec{Page: 1, PageSize: 10}, want: 0},
		{name: "third page", spec: QuerySpec{Page: 3, PageSize: 5}, want: 10},
		{name: "zero page", spec: QuerySpec{Page: 0, PageSize: 10}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Offset())
		})
	}
}

func TestOffer_JSONHidesStatus(t *testing.T) {
	b, err := json.Marshal(Offer{OfferID: "o1", Status: OfferStatusPending})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "o1", m["_id"])
	assert.NotContains(t, m, "status")
	assert.NotContains(t, m, "owner")
	assert.Nil(t, m["product_image"])
}
