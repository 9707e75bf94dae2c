// File: convert.go
// Title: Scalar Conversion
// Description: Generic conversion between text and the Go scalar kinds.
//              Integers use decimal, floats the shortest representation
//              that round-trips at their bit size and booleans "1"/"0".
//              Malformed input is reported as a STRUTIL_PARSE_ERROR error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import (
	"reflect"
	"strconv"

	strerrors "github.com/msto63/strutil/core/errors"
)

// Scalar is the closed set of types ToString and ParseString support,
// including named types built on them.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~bool | ~string
}

// ToString renders v as text.
//
//	ToString(-255)       // "-255"
//	ToString(uint8(100)) // "100"
//	ToString(5.245)      // "5.245"
//	ToString(true)       // "1"
func ToString[T Scalar](v T) string {
	s, _ := scalarString(reflect.ValueOf(v))
	return s
}

func scalarString(rv reflect.Value) (string, bool) {
	if !rv.IsValid() {
		return "", false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.Bool:
		if rv.Bool() {
			return "1", true
		}
		return "0", true
	case reflect.String:
		return rv.String(), true
	default:
		return "", false
	}
}

// CharToString returns the one-byte string holding c.
func CharToString(c byte) string {
	return string([]byte{c})
}

// ParseString converts text to T. Surrounding whitespace is ignored for
// numbers and booleans; strings are returned unchanged. Booleans accept
// the strconv.ParseBool forms ("1", "0", "true", "false", ...).
// On malformed or out-of-range input the zero value is returned together
// with a STRUTIL_PARSE_ERROR error wrapping the strconv error.
func ParseString[T Scalar](text string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	trimmed := TrimCopy(text)

	var err error
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if n, err = strconv.ParseInt(trimmed, 10, rv.Type().Bits()); err == nil {
			rv.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var n uint64
		if n, err = strconv.ParseUint(trimmed, 10, rv.Type().Bits()); err == nil {
			rv.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = strconv.ParseFloat(trimmed, rv.Type().Bits()); err == nil {
			rv.SetFloat(f)
		}
	case reflect.Bool:
		var b bool
		if b, err = strconv.ParseBool(trimmed); err == nil {
			rv.SetBool(b)
		}
	case reflect.String:
		rv.SetString(text)
	}

	if err != nil {
		var zero T
		return zero, strerrors.ParseFailed("ParseString", text, rv.Type().String(), err)
	}
	return v, nil
}

// MustParseString is like ParseString but panics on malformed input.
func MustParseString[T Scalar](text string) T {
	v, err := ParseString[T](text)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseStringOr is like ParseString but returns def on malformed input.
func ParseStringOr[T Scalar](text string, def T) T {
	v, err := ParseString[T](text)
	if err != nil {
		return def
	}
	return v
}

// ParseChar returns the single byte of text after trimming whitespace.
// Anything other than exactly one byte is a parse error.
func ParseChar(text string) (byte, error) {
	trimmed := TrimCopy(text)
	if len(trimmed) != 1 {
		return 0, strerrors.ParseFailed("ParseChar", text, "char", nil)
	}
	return trimmed[0], nil
}
