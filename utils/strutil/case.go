// File: case.go
// Title: ASCII Case Conversion
// Description: Implements byte-oriented case mapping. Only the ASCII letters
//              A-Z and a-z are changed; every other byte, including UTF-8
//              continuation bytes, passes through untouched.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upperByte(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// mapBytes applies f to every byte and avoids allocating when nothing changes
func mapBytes(s string, f func(byte) byte) string {
	for i := 0; i < len(s); i++ {
		if f(s[i]) != s[i] {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = f(b[j])
			}
			return string(b)
		}
	}
	return s
}

// ToLower maps every ASCII uppercase letter of s to lowercase.
func ToLower(s string) string {
	return mapBytes(s, lowerByte)
}

// ToUpper maps every ASCII lowercase letter of s to uppercase.
func ToUpper(s string) string {
	return mapBytes(s, upperByte)
}

// Capitalize uppercases the first byte of s and lowercases the rest.
//
//	Capitalize("heLlo StRUTIL") // "Hello strutil"
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(upperByte(s[0])) + ToLower(s[1:])
}

// CapitalizeFirstChar lowercases the whole string, then uppercases the
// first byte. For ASCII input the result equals Capitalize.
func CapitalizeFirstChar(s string) string {
	return UpperFirst(ToLower(s))
}

// UpperFirst uppercases the first byte of s and leaves the rest as is.
//
//	UpperFirst("heLlo StRUTIL") // "HeLlo StRUTIL"
func UpperFirst(s string) string {
	if s == "" || upperByte(s[0]) == s[0] {
		return s
	}
	return string(upperByte(s[0])) + s[1:]
}
