// File: truncate.go
// Title: Truncation and Preview
// Description: Byte-length truncation with an ellipsis, escaping of
//              non-printable bytes and previews that combine both.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import "strings"

// DefaultEllipsis is appended by Truncate and Preview
const DefaultEllipsis = "..."

// Truncate is TruncateWith using DefaultEllipsis.
//
//	Truncate("hello world", 5) // "he..."
//	Truncate("hello", 2)       // ".."
func Truncate(s string, maxLen int) string {
	return TruncateWith(s, maxLen, DefaultEllipsis)
}

// TruncateWith shortens s to at most maxLen bytes. If s already fits it
// is returned unchanged. Otherwise the longest prefix that leaves room
// for ellipsis is kept and ellipsis appended. When maxLen is not larger
// than the ellipsis, the first maxLen bytes of the ellipsis are returned.
// A negative maxLen behaves like 0.
func TruncateWith(s string, maxLen int, ellipsis string) string {
	if maxLen < 0 {
		maxLen = 0
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= len(ellipsis) {
		return ellipsis[:maxLen]
	}
	return s[:maxLen-len(ellipsis)] + ellipsis
}

const hexDigitsUpper = "0123456789ABCDEF"

// Escape replaces non-printable bytes with escape sequences. Backslash,
// \n, \r, \t, NUL, \b, \f and \v become two-character escapes; any other
// byte outside 0x20-0x7E becomes \xHH.
//
//	Escape("A\x00B") // `A\0B`
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		default:
			if c < 0x20 || c > 0x7E {
				b.WriteString(`\x`)
				b.WriteByte(hexDigitsUpper[c>>4])
				b.WriteByte(hexDigitsUpper[c&0x0F])
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

// Preview is PreviewWith using DefaultEllipsis.
func Preview(s string, maxLen int) string {
	return PreviewWith(s, maxLen, DefaultEllipsis)
}

// PreviewWith escapes s and truncates the escaped text, so the length
// budget counts escape sequences rather than the original bytes.
func PreviewWith(s string, maxLen int, ellipsis string) string {
	return TruncateWith(Escape(s), maxLen, ellipsis)
}
