// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// HashPassword computes base64(SHA256(password + salt)), the password
// digest stored for every account.
//
// Example usage:
//
//	hash := utils.HashPassword("pw", user.Salt)
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// CheckPassword reports whether password, salted with salt, matches the
// stored hash. The comparison runs in constant time.
func CheckPassword(password, salt, hash string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
