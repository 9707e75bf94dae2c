// File: compare.go
// Title: Comparison Helpers
// Description: Containment, prefix, suffix and case-insensitive comparison.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import (
	"strings"
)

// Contains reports whether needle occurs anywhere in s.
// Contains("", "") is true.
func Contains(s, needle string) bool {
	return strings.Contains(s, needle)
}

// ContainsChar reports whether byte c occurs in s.
func ContainsChar(s string, c byte) bool {
	return strings.IndexByte(s, c) >= 0
}

// CompareIgnoreCase reports whether a and b have the same length and are
// equal byte by byte under ASCII case folding.
func CompareIgnoreCase(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerByte(a[i]) != lowerByte(b[i]) {
			return false
		}
	}
	return true
}

// StartsWith reports whether s begins with prefix
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// StartsWithChar reports whether the first byte of s is c.
// It is always false for the empty string.
func StartsWithChar(s string, c byte) bool {
	return len(s) > 0 && s[0] == c
}

// EndsWithChar reports whether the last byte of s is c.
// It is always false for the empty string.
func EndsWithChar(s string, c byte) bool {
	return len(s) > 0 && s[len(s)-1] == c
}

// IsAlphanumeric reports whether every byte of s is an ASCII letter or
// digit. The empty string is alphanumeric.
func IsAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
