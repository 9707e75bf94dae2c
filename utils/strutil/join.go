// File: join.go
// Title: Joining
// Description: Joins slices and sequences of any element type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Join renders every element and concatenates them with delim between
// consecutive elements. Scalars use ToString, so int8 and uint8 print as
// numbers and booleans as "1"/"0"; other types use their fmt form.
func Join[T any](tokens []T, delim string) string {
	return JoinSeq(slices.Values(tokens), delim)
}

// JoinSeq is Join over an iterator. Pass sets as sorted sequences, for
// example slices.Values(slices.Sorted(maps.Keys(set))).
func JoinSeq[T any](seq iter.Seq[T], delim string) string {
	var b strings.Builder
	first := true
	for v := range seq {
		if !first {
			b.WriteString(delim)
		}
		first = false
		b.WriteString(render(v))
	}
	return b.String()
}

func render(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	if s, ok := scalarString(reflect.ValueOf(v)); ok {
		return s
	}
	return fmt.Sprint(v)
}
