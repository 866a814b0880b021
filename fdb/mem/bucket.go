package mem

import (
	"fmt"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/fdb/query"
	"github.com/LUDevNet/assembly-fdb/internal/latin1"
)

// rowBucket computes the bucket a row belongs in from its first field,
// per the primary-key invariant: hash(first field) mod bucket_count.
func rowBucket(fields []Value, cols []ColumnDef, bucketCount uint32) (uint32, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("fdb/mem: table has no columns, cannot place a row")
	}
	hash, err := hashValue(fields[0])
	if err != nil {
		return 0, err
	}
	return hash % bucketCount, nil
}

// hashValue computes the primary-key hash of an owned field value, using
// the same rules as fdb/query.Filter (Integer: bit-reinterpret; BigInt:
// low 32 bits of the two's-complement u64; Text: SuperFastHash over the
// Latin-1 bytes).
func hashValue(v Value) (uint32, error) {
	switch v.Type {
	case core.Integer:
		return query.IntegerHash(v.Int32), nil
	case core.BigInt:
		return query.BigIntHash(v.Int64), nil
	case core.Text:
		b, err := latin1.Encode(v.Text)
		if err != nil {
			return 0, err
		}
		return query.TextHash(b), nil
	default:
		return 0, fmt.Errorf("fdb/mem: %w: %s", core.ErrUnsupportedKeyType, v.Type)
	}
}
