// File: split.go
// Title: Splitting Functions
// Description: Splits text on literal delimiters, line breaks, runs of
//              whitespace or any byte from a delimiter set. Literal splits
//              always yield one more token than there are delimiters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import "strings"

// Split cuts s around every occurrence of delim. Leading, trailing and
// consecutive delimiters produce empty tokens; Split("", ";") is [""].
// An empty delim returns [s].
func Split(s, delim string) []string {
	if delim == "" {
		return []string{s}
	}
	return strings.Split(s, delim)
}

// SplitChar is Split with a single byte delimiter.
func SplitChar(s string, delim byte) []string {
	tokens := make([]string, 0, strings.Count(s, string([]byte{delim}))+1)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == delim {
			tokens = append(tokens, s[start:i])
			start = i + 1
		}
	}
	return append(tokens, s[start:])
}

// SplitLines splits s on '\n' and removes one trailing '\r' from each
// line, so LF and CRLF input give the same result. A lone '\r' inside a
// line is kept.
func SplitLines(s string) []string {
	lines := SplitChar(s, '\n')
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SplitLinesClean returns the lines of s trimmed of whitespace, without
// lines that end up empty.
func SplitLinesClean(s string) []string {
	lines := SplitLines(s)
	out := lines[:0]
	for _, line := range lines {
		if line = TrimCopy(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SplitWords splits s on runs of whitespace. The result never contains
// empty tokens and is empty for blank input.
func SplitWords(s string) []string {
	words := []string{}
	start := -1
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// SplitAny cuts s at every byte that occurs in delims, one token boundary
// per delimiter byte. An empty delims returns [s].
func SplitAny(s, delims string) []string {
	if delims == "" {
		return []string{s}
	}
	var tokens []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(delims, s[i]) >= 0 {
			tokens = append(tokens, s[start:i])
			start = i + 1
		}
	}
	return append(tokens, s[start:])
}
