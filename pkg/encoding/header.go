// Package encoding provides text helpers for fixed-size fields in binary mesh files.
package encoding

import (
	"bytes"
	"strings"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Windows1252ToUTF8 converts Windows-1252 encoded bytes to a UTF-8 string.
// Returns the original bytes as a string if conversion fails.
func Windows1252ToUTF8(data []byte) string {
	decoder := charmap.Windows1252.NewDecoder()
	result, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return string(data)
	}
	return string(result)
}

// UTF8ToWindows1252 converts a UTF-8 string to Windows-1252 bytes.
// Characters outside the code page become the SUB control byte (0x1A).
func UTF8ToWindows1252(s string) []byte {
	encoder := textencoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	result, _, err := transform.Bytes(encoder, []byte(s))
	if err != nil {
		return []byte(s)
	}
	return result
}

// TrimNullBytes removes trailing null bytes from a byte slice.
func TrimNullBytes(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

// FixedStringToUTF8 converts a fixed-size header field to a UTF-8 string.
// The field ends at the first NUL; trailing spaces are dropped since many
// exporters pad with them instead.
func FixedStringToUTF8(data []byte) string {
	if nullIdx := bytes.IndexByte(data, 0); nullIdx >= 0 {
		data = data[:nullIdx]
	}
	return strings.TrimRight(Windows1252ToUTF8(data), " ")
}

// UTF8ToFixedString encodes s into a NUL-padded field of the given size,
// truncating if it does not fit.
func UTF8ToFixedString(s string, size int) []byte {
	result := make([]byte, size)
	copy(result, UTF8ToWindows1252(s))
	return result
}
