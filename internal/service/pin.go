// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Interactive-login profile: the PIN space is tiny
// (10^4), so the cost factors are what actually slows an offline guess.
const (
	pinSaltLength   = 16
	argonTime       = 1
	argonMemoryKiB  = 64 * 1024
	argonThreads    = 4
	argonKeyLength  = 32
	pinDigitsNeeded = 4
)

// validatePINFormat checks the exactly-4-digits rule. Formats like "12345"
// or "12a4" are rejected before any hashing happens.
func validatePINFormat(pin string) error {
	if len(pin) != pinDigitsNeeded {
		return ErrInvalidPINFormat
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPINFormat
		}
	}

	return nil
}

// hashPIN derives an Argon2id digest of the PIN under a fresh per-case
// random salt. Returns the hex-encoded digest and the raw salt; both are
// persisted, the PIN itself never is.
func hashPIN(pin string) (string, []byte, error) {
	salt := make([]byte, pinSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", nil, fmt.Errorf("error generating PIN salt: %w", err)
	}

	digest := argon2.IDKey([]byte(pin), salt, argonTime, argonMemoryKiB, argonThreads, argonKeyLength)

	return hex.EncodeToString(digest), salt, nil
}

// matchPIN re-derives the digest under the stored salt and compares in
// constant time.
func matchPIN(pin, storedHash string, salt []byte) bool {
	expected, err := hex.DecodeString(storedHash)
	if err != nil {
		return false
	}

	digest := argon2.IDKey([]byte(pin), salt, argonTime, argonMemoryKiB, argonThreads, argonKeyLength)

	return subtle.ConstantTimeCompare(digest, expected) == 1
}
