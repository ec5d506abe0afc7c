// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for generating case identifiers and handoff references,
// HTTP response writing, and other common operations.
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// idAlphabet excludes visually confusable characters (0/O, 1/I/L) so case
// IDs survive being read aloud or copied by hand.
const idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	caseIDLength           = 6
	handoffReferenceLength = 8
)

// GenerateCaseID returns a random 6-character case identifier drawn from
// the confusion-free alphabet. Uniqueness is not guaranteed here — the
// caller relies on the database primary key and retries on collision.
func GenerateCaseID() (string, error) {
	id, err := randomString(caseIDLength)
	if err != nil {
		return "", fmt.Errorf("error generating case id: %w", err)
	}

	return id, nil
}

// GenerateHandoffReference returns a one-time opaque handoff token of the
// form "HO-XXXXXXXX". The token carries no information about the case it
// refers to.
func GenerateHandoffReference() (string, error) {
	suffix, err := randomString(handoffReferenceLength)
	if err != nil {
		return "", fmt.Errorf("error generating handoff reference: %w", err)
	}

	return "HO-" + suffix, nil
}

func randomString(length int) (string, error) {
	max := big.NewInt(int64(len(idAlphabet)))

	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = idAlphabet[n.Int64()]
	}

	return string(out), nil
}
