// File: random.go
// Title: String Generation
// Description: Repetition and random string generation. The fast
//              generators draw from the process-wide math/rand/v2 source
//              and are not reproducible; RandomSecureString uses
//              crypto/rand for tokens that must be unpredictable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import (
	cryptorand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"strings"

	strerrors "github.com/msto63/strutil/core/errors"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits           = "0123456789"
	Alphanumeric     = Digits + LettersUppercase + LettersLowercase
)

// Repeat returns unit concatenated n times; n <= 0 yields "".
func Repeat(unit string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(unit, n)
}

// RepeatChar returns a string of n copies of c; n <= 0 yields "".
func RepeatChar(c byte, n int) string {
	return Repeat(string([]byte{c}), n)
}

// RandomLowercaseString returns n bytes drawn uniformly from a-z.
func RandomLowercaseString(n int) string {
	return RandomStringFromSet(n, LettersLowercase)
}

// RandomAlphanumericString returns n bytes drawn uniformly from 0-9, A-Z
// and a-z.
func RandomAlphanumericString(n int) string {
	return RandomStringFromSet(n, Alphanumeric)
}

// RandomStringFromSet returns n bytes drawn uniformly from charset. An
// empty charset falls back to Alphanumeric; n <= 0 yields "".
func RandomStringFromSet(n int, charset string) string {
	if n <= 0 {
		return ""
	}
	if charset == "" {
		charset = Alphanumeric
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}

// RandomSecureString is RandomStringFromSet backed by crypto/rand. It
// fails only when the system randomness source does.
func RandomSecureString(n int, charset string) (string, error) {
	if n <= 0 {
		return "", nil
	}
	if charset == "" {
		charset = Alphanumeric
	}

	b := make([]byte, n)
	limit := big.NewInt(int64(len(charset)))
	for i := range b {
		idx, err := cryptorand.Int(cryptorand.Reader, limit)
		if err != nil {
			return "", strerrors.OperationFailed(strerrors.ModuleStrutil, "RandomSecureString", err)
		}
		b[i] = charset[idx.Int64()]
	}
	return string(b), nil
}
