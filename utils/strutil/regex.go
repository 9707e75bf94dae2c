// File: regex.go
// Title: Regular Expression Helpers
// Description: Full-match checks and regex based splitting. Token assembly
//              only needs match index pairs, so any engine that implements
//              Matcher can be plugged in; *regexp.Regexp does.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import (
	"regexp"
	"sync"

	strerrors "github.com/msto63/strutil/core/errors"
)

// Matcher finds non-overlapping matches and returns their [start, end)
// byte offsets, at most n of them (all if n < 0).
type Matcher interface {
	FindAllStringIndex(s string, n int) [][]int
}

const maxAnchoredCache = 256

// Anchored copies of patterns used by Matches
var (
	anchoredCache = make(map[string]*regexp.Regexp)
	anchoredMu    sync.RWMutex
)

// CompilePattern compiles pattern, reporting failures as
// STRUTIL_INVALID_PATTERN errors.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, strerrors.InvalidPattern("CompilePattern", pattern, err)
	}
	return re, nil
}

// Matches reports whether re matches the whole of s, not just a substring.
func Matches(s string, re *regexp.Regexp) bool {
	return anchored(re).MatchString(s)
}

// MatchesPattern compiles pattern and reports whether it matches the whole
// of s.
func MatchesPattern(s, pattern string) (bool, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return false, err
	}
	return Matches(s, re), nil
}

// anchored returns re wrapped in ^(?:...)$, caching the result
func anchored(re *regexp.Regexp) *regexp.Regexp {
	src := re.String()

	anchoredMu.RLock()
	a, ok := anchoredCache[src]
	anchoredMu.RUnlock()
	if ok {
		return a
	}

	// Wrapping a valid pattern in a group keeps it valid
	a = regexp.MustCompile(`^(?:` + src + `)$`)

	anchoredMu.Lock()
	defer anchoredMu.Unlock()
	if cached, ok := anchoredCache[src]; ok {
		return cached
	}
	if len(anchoredCache) >= maxAnchoredCache {
		for k := range anchoredCache {
			delete(anchoredCache, k)
			if len(anchoredCache) <= maxAnchoredCache/2 {
				break
			}
		}
	}
	anchoredCache[src] = a
	return a
}

// RegexSplit splits s using the matches of m as separators. Without any
// match the result is [s], so RegexSplit("", m) is [""]. A separator at
// the very end does not produce a trailing empty token.
//
// A pattern matching the empty string matches before every byte, which
// yields a leading "" followed by one token per byte:
//
//	RegexSplit("abc;def", regexp.MustCompile("")) // ["" "a" "b" "c" ";" "d" "e" "f"]
func RegexSplit(s string, m Matcher) []string {
	matches := m.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return []string{s}
	}

	tokens := make([]string, 0, len(matches)+1)
	prev := 0
	for _, loc := range matches {
		tokens = append(tokens, s[prev:loc[0]])
		prev = loc[1]
	}
	if prev < len(s) {
		tokens = append(tokens, s[prev:])
	}
	return tokens
}

// RegexSplitMap maps the text of every match of m to the text between the
// end of that match and the start of the next one (or the end of s).
// Values are not trimmed. Later duplicates overwrite earlier ones, and s
// without any match yields an empty map.
func RegexSplitMap(s string, m Matcher) map[string]string {
	matches := m.FindAllStringIndex(s, -1)
	result := make(map[string]string, len(matches))
	for i, loc := range matches {
		end := len(s)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		result[s[loc[0]:loc[1]]] = s[loc[1]:end]
	}
	return result
}

// RegexSplitPattern compiles pattern and calls RegexSplit.
func RegexSplitPattern(s, pattern string) ([]string, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return RegexSplit(s, re), nil
}

// RegexSplitMapPattern compiles pattern and calls RegexSplitMap.
func RegexSplitMapPattern(s, pattern string) (map[string]string, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return RegexSplitMap(s, re), nil
}
