// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() User {
	return User{
		UserID:     "u1",
		Email:      "a@b.c",
		Account:    Account{Username: "alice", Avatar: &MediaHandle{PublicID: "users/u1/av", URL: "http://x/av"}},
		Newsletter: true,
		Token:      "tok",
		Hash:       "hash",
		Salt:       "salt",
	}
}

func TestUser_Export(t *testing.T) {
	pub := testUser().Export()

	assert.Equal(t, "u1", pub.UserID)
	assert.Equal(t, "tok", pub.Token)
	assert.Equal(t, "alice", pub.Account.Username)

	b, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "salt")
}

func TestUser_OwnerHasNoSecrets(t *testing.T) {
	b, err := json.Marshal(testUser().Owner())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "u1", m["_id"])
	assert.NotContains(t, m, "token")
	assert.NotContains(t, m, "email")
}

func TestUser_JSONDropsCredentials(t *testing.T) {
	b, err := json.Marshal(testUser())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, key := range []string{"Token", "token", "Hash", "hash", "Salt", "salt"} {
		assert.NotContains(t, m, key)
	}
}
