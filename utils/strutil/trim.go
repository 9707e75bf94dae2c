// File: trim.go
// Title: Whitespace Trimming
// Description: Trims ASCII whitespace in place or on copies.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import "strings"

// Whitespace is the set of bytes removed by the trim functions and used
// as separators by SplitWords.
const Whitespace = " \t\n\r\f\v"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// TrimLeft removes leading whitespace from *s in place.
func TrimLeft(s *string) {
	*s = strings.TrimLeft(*s, Whitespace)
}

// TrimRight removes trailing whitespace from *s in place.
func TrimRight(s *string) {
	*s = strings.TrimRight(*s, Whitespace)
}

// Trim removes leading and trailing whitespace from *s in place.
func Trim(s *string) {
	TrimRight(s)
	TrimLeft(s)
}

// TrimLeftCopy returns s without leading whitespace.
func TrimLeftCopy(s string) string {
	TrimLeft(&s)
	return s
}

// TrimRightCopy returns s without trailing whitespace.
func TrimRightCopy(s string) string {
	TrimRight(&s)
	return s
}

// TrimCopy returns s without leading and trailing whitespace.
func TrimCopy(s string) string {
	Trim(&s)
	return s
}
