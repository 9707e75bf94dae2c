// File: tokens.go
// Title: Token Slice Helpers
// Description: Drops empty or duplicate tokens, sorts and reverses slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import (
	"cmp"
	"slices"
)

// DropEmpty removes empty tokens from *tokens, keeping the order of the
// others.
func DropEmpty(tokens *[]string) {
	*tokens = slices.DeleteFunc(*tokens, func(s string) bool { return s == "" })
}

// DropEmptyCopy returns tokens without empty entries. The input is not
// modified.
func DropEmptyCopy(tokens []string) []string {
	out := slices.Clone(tokens)
	DropEmpty(&out)
	return out
}

// DropDuplicate sorts *tokens and removes repeated entries. The original
// order is not preserved:
//
//	["t1" "t2" "" "t4" "" "t1"] becomes ["" "t1" "t2" "t4"]
func DropDuplicate(tokens *[]string) {
	slices.Sort(*tokens)
	*tokens = slices.Compact(*tokens)
}

// DropDuplicateCopy is DropDuplicate on a copy of tokens.
func DropDuplicateCopy(tokens []string) []string {
	out := slices.Clone(tokens)
	DropDuplicate(&out)
	return out
}

// SortAscending sorts values in place in increasing order
func SortAscending[T cmp.Ordered](values []T) {
	slices.Sort(values)
}

// SortDescending sorts values in place in decreasing order
func SortDescending[T cmp.Ordered](values []T) {
	slices.SortFunc(values, func(a, b T) int { return cmp.Compare(b, a) })
}

// ReverseInPlace reverses the order of values
func ReverseInPlace[T any](values []T) {
	slices.Reverse(values)
}

// ReverseCopy returns the elements of values in reverse order without
// modifying values.
func ReverseCopy[T any](values []T) []T {
	out := slices.Clone(values)
	slices.Reverse(out)
	return out
}
