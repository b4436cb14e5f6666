package textutil

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Encoding is one of the two byte-offset encoding forms the host
// exposes. The zero value is UTF8.
type Encoding int

const (
	// UTF8 is the host's default form. Conversions are byte-faithful:
	// malformed sequences survive an encode/decode round trip intact.
	UTF8 Encoding = iota
	// UTF16LE is UTF-16 little-endian, used by hosts that report
	// column offsets in 16-bit code units.
	UTF16LE
)

// String returns the conventional name of the encoding form.
func (e Encoding) String() string {
	switch e {
	case UTF16LE:
		return "UTF-16-LE"
	default:
		return "UTF-8"
	}
}

var (
	utf16leEnc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// Encode converts text to bytes in the encoding form.
//
// The policy is permissive. Under UTF8 the conversion is the identity
// on the underlying bytes, so byte sequences that are not valid UTF-8
// are preserved rather than rejected. Under UTF16LE, malformed input
// becomes the replacement character.
func (e Encoding) Encode(text string) []byte {
	switch e {
	case UTF16LE:
		// The UTF-16 transform substitutes rather than fails.
		b, _ := utf16leEnc.NewEncoder().Bytes([]byte(text))
		return b
	default:
		return []byte(text)
	}
}

// Decode converts bytes in the encoding form back to a string, under
// the same permissive policy as Encode.
func (e Encoding) Decode(btext []byte) string {
	switch e {
	case UTF16LE:
		b, _ := utf16leEnc.NewDecoder().Bytes(btext)
		return string(b)
	default:
		return string(btext)
	}
}

// Recode sanitizes text by a lossy UTF-8 round trip: byte sequences
// that are not valid UTF-8 are dropped. Use it for text that must not
// contain encoding errors, accepting silent loss on invalid input.
func Recode(text string) string {
	return strings.ToValidUTF8(text, "")
}
