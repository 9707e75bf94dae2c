// File: replace.go
// Title: Substring Replacement
// Description: In-place replacement of the first, last or every occurrence
//              of a target substring, plus copy variants. All functions
//              report whether anything was replaced and leave the input
//              untouched when they return false.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import "strings"

// ReplaceFirst replaces the first occurrence of target in *s.
// An empty target matches at the start, so replacement is prepended.
func ReplaceFirst(s *string, target, replacement string) bool {
	i := strings.Index(*s, target)
	if i < 0 {
		return false
	}
	*s = (*s)[:i] + replacement + (*s)[i+len(target):]
	return true
}

// ReplaceLast replaces the last occurrence of target in *s.
// An empty target matches at the end, so replacement is appended.
func ReplaceLast(s *string, target, replacement string) bool {
	i := strings.LastIndex(*s, target)
	if i < 0 {
		return false
	}
	*s = (*s)[:i] + replacement + (*s)[i+len(target):]
	return true
}

// ReplaceAll replaces every non-overlapping occurrence of target in *s,
// scanning left to right. Inserted text is never searched again.
// It returns false when *s or target is empty or target does not occur.
func ReplaceAll(s *string, target, replacement string) bool {
	if *s == "" || target == "" || !strings.Contains(*s, target) {
		return false
	}
	*s = strings.ReplaceAll(*s, target, replacement)
	return true
}

// ReplaceFirstCopy is ReplaceFirst on a copy of s.
func ReplaceFirstCopy(s, target, replacement string) (string, bool) {
	ok := ReplaceFirst(&s, target, replacement)
	return s, ok
}

// ReplaceLastCopy is ReplaceLast on a copy of s.
func ReplaceLastCopy(s, target, replacement string) (string, bool) {
	ok := ReplaceLast(&s, target, replacement)
	return s, ok
}

// ReplaceAllCopy is ReplaceAll on a copy of s.
func ReplaceAllCopy(s, target, replacement string) (string, bool) {
	ok := ReplaceAll(&s, target, replacement)
	return s, ok
}
