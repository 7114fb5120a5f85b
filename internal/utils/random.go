// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CredentialLength is the length of generated salts and bearer tokens.
const CredentialLength = 16

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a cryptographically random alphanumeric string of
// the given length. It is used for password salts and bearer tokens.
func RandomString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid random string length %d", length)
	}

	limit := big.NewInt(int64(len(alphanumeric)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("error reading random source: %w", err)
		}
		out[i] = alphanumeric[n.Int64()]
	}

	return string(out), nil
}
