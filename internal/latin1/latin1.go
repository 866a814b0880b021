// Package latin1 converts between Go's native UTF-8 strings and the
// ISO/IEC 8859-1 byte encoding the FDB format uses for all text. Latin-1
// is a total decoding (every byte value 0x00-0xFF is a valid code point),
// so Decode never fails; Encode can fail for runes outside the Latin-1
// repertoire.
package latin1

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw Latin-1 bytes (as read from the file, NUL
// terminator already stripped by the caller) into a UTF-8 Go string.
func Decode(b []byte) string {
	// charmap.ISO8859_1 only maps bytes to runes; every byte value has a
	// defined mapping, so the decoder never errors.
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(out)
}

// Encode converts a Go string into Latin-1 bytes, suitable for writing to
// the store. Returns an error if s contains a rune outside Latin-1.
func Encode(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("latin1: %q is not representable: %w", s, err)
	}
	return out, nil
}
