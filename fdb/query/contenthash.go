package query

import "github.com/cespare/xxhash/v2"

// ContentHash is a 64-bit non-cryptographic hash over an arbitrary byte
// encoding of a row's fields. It has nothing to do with the format's
// primary-key hash rules above: it exists purely so a caller comparing
// two rows (cmd/fdb-diff, mainly) can skip an exact field-by-field
// comparison whenever the hashes already disagree, and only pay for the
// full comparison to confirm an apparent match or to produce a diff.
func ContentHash(encodedFields []byte) uint64 {
	return xxhash.Sum64(encodedFields)
}
