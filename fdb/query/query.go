// Package query implements primary-key hashing and filtering: turning a
// textual key plus a column's value type into a (hash, parsed value) pair
// that the view layer can use to pick a bucket and then confirm an exact
// match. Grounded field-for-field on the PrimaryKeyFilter family in the
// original query module this was distilled from.
package query

import (
	"fmt"
	"strconv"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/internal/latin1"
)

// Filter is a precomputed (hash, value) pair used to narrow bucket
// selection and then confirm exact equality. The hash alone is never
// sufficient: collisions are possible and real.
type Filter struct {
	Type  core.ValueType
	Hash  uint32
	Int32 int32
	Int64 int64
	Text  string
}

// NewFilter builds a Filter for a PK lookup of key against a column of
// the given value type. Rejects Float/Nothing/Boolean columns as PK
// types, since the format never hashes those.
func NewFilter(t core.ValueType, key string) (Filter, error) {
	switch t {
	case core.Text:
		return TextFilter(key), nil
	case core.Integer:
		return IntegerFilter(key)
	case core.BigInt:
		return BigIntFilter(key)
	default:
		return Filter{}, fmt.Errorf("%w: %s", core.ErrUnsupportedKeyType, t)
	}
}

// TextFilter hashes key with SuperFastHash over its raw Latin-1 bytes.
// A key holding a rune outside Latin-1 cannot equal any stored Text value,
// so it is hashed over its UTF-8 bytes instead.
func TextFilter(key string) Filter {
	b, err := latin1.Encode(key)
	if err != nil {
		b = []byte(key)
	}
	return Filter{
		Type: core.Text,
		Hash: SuperFastHash(b),
		Text: key,
	}
}

// TextHash is SuperFastHash applied directly to already-encoded Latin-1
// bytes, exposed for callers (the writer, mostly) that already hold the
// encoded string and don't want to build a Filter.
func TextHash(latin1Bytes []byte) uint32 {
	return SuperFastHash(latin1Bytes)
}

// IntegerFilter parses key as a signed 32-bit integer and hashes it by
// bit-reinterpreting the value as unsigned (hash = (u32) value).
func IntegerFilter(key string) (Filter, error) {
	v, err := strconv.ParseInt(key, 10, 32)
	if err != nil {
		return Filter{}, fmt.Errorf("%w: %v", core.ErrKeyParse, err)
	}
	value := int32(v)
	return Filter{
		Type:  core.Integer,
		Hash:  IntegerHash(value),
		Int32: value,
	}, nil
}

// IntegerHash bit-reinterprets a signed 32-bit value as unsigned 32-bit.
func IntegerHash(v int32) uint32 {
	return uint32(v)
}

// BigIntFilter parses key as a signed 64-bit integer and hashes it by the
// canonical rule: the low 32 bits of its two's-complement representation.
//
// The historical writers disagree here — one truncates to the low 32
// bits, another reinterprets the native bytes directly — but on a
// little-endian host (the format's only supported host, see the design's
// endianness note) the native-bytes formula and the low-32-bits-of-u64
// formula produce the same result for the low word, so this rule matches
// both in practice for little-endian-produced files; the reference rule is
// the one made canonical below. Any existing file produced by the other
// historical formula is best-effort compatible only; mismatches should be
// logged, not silently mis-bucketed.
func BigIntFilter(key string) (Filter, error) {
	v, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return Filter{}, fmt.Errorf("%w: %v", core.ErrKeyParse, err)
	}
	return Filter{
		Type:  core.BigInt,
		Hash:  BigIntHash(v),
		Int64: v,
	}, nil
}

// BigIntHash returns the low 32 bits of v's two's-complement
// representation: uint64(v) % 2^32, i.e. a plain truncating cast.
func BigIntHash(v int64) uint32 {
	return uint32(uint64(v))
}
