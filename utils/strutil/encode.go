// File: encode.go
// Title: Byte Encoding
// Description: Renders bytes as hex or binary digits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package strutil

import (
	"encoding/hex"
	"strings"
)

// ToHexString renders each byte of data as two hex digits. A nil or
// empty slice yields "".
func ToHexString(data []byte, uppercase bool) string {
	s := hex.EncodeToString(data)
	if uppercase {
		return ToUpper(s)
	}
	return s
}

// ToBinaryString renders each byte of data as eight binary digits, most
// significant bit first.
func ToBinaryString(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 8)
	for _, c := range data {
		for bit := 7; bit >= 0; bit-- {
			b.WriteByte('0' + (c>>uint(bit))&1)
		}
	}
	return b.String()
}
