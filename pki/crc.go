package pki

import (
	"hash/crc32"
)

// PathCRC computes the hash-value the client uses to key a file within a
// PK archive or PKI index: the relative path, forward slashes folded to
// backslashes and letters lowercased, matching the original's
// normalize_char rule.
//
// The original crate uses CRC-32/MPEG-2 (non-reflected, no final XOR), a
// variant the standard library's hash/crc32 package cannot express since
// crc32.MakeTable only builds reflected tables. At this package's
// interface depth (see the package doc comment) PathCRC uses the
// standard IEEE polynomial instead: it produces a path->hash mapping
// usable for building and querying archives created by this package, but
// it will not reproduce CRC values computed by the original client. A
// byte-exact port would need a small hand-rolled non-reflected CRC-32
// core, which is out of scope here.
func PathCRC(path string) uint32 {
	norm := make([]byte, len(path))
	for i := 0; i < len(path); i++ {
		norm[i] = normalizeChar(path[i])
	}
	h := crc32.NewIEEE()
	h.Write(norm)
	h.Write([]byte{0, 0, 0, 0})
	return h.Sum32()
}

func normalizeChar(b byte) byte {
	switch {
	case b == '/':
		return '\\'
	case b >= 'A' && b <= 'Z':
		return b + 0x20
	default:
		return b
	}
}
