package ro

import (
	"log/slog"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/fdb/cursor"
	"github.com/LUDevNet/assembly-fdb/fdb/query"
	"github.com/LUDevNet/assembly-fdb/fdb/raw"
)

// Row is a handle to one row's field array.
type Row struct {
	c      cursor.Cursor
	fields cursor.Slice[raw.FieldData]
}

func (r Row) FieldCount() int {
	return r.fields.Len()
}

// FieldAt returns the i'th field, or ok=false iff i >= FieldCount().
func (r Row) FieldAt(i int) (Field, bool) {
	if i < 0 || i >= r.fields.Len() {
		return Field{}, false
	}
	return Field{c: r.c, d: r.fields.At(i)}, true
}

// RowIter is the public, possibly-PK-narrowed row iterator returned by
// Table.Rows and Table.RowIterForPK. It composes either a full walk over
// every bucket (buckets set) or a single bucket's walk plus a PK filter
// (single+filter set).
type RowIter struct {
	buckets Buckets
	bIdx    int
	cur     *bucketRowIter

	single  *bucketRowIter
	filter  *query.Filter
	scanned bool // whether the single-bucket scan has reported a miss yet
	matched bool // whether the single-bucket scan has returned a match
}

// matchesFilter confirms a candidate row by full value equality on its
// first field, never by hash alone: hash collisions are possible and real.
func matchesFilter(row Row, f *query.Filter) (bool, error) {
	field, ok := row.FieldAt(0)
	if !ok {
		return false, nil
	}
	switch f.Type {
	case core.Integer:
		v, err := field.Int32()
		if err != nil {
			return false, err
		}
		return v == f.Int32, nil
	case core.BigInt:
		v, err := field.Int64()
		if err != nil {
			return false, err
		}
		return v == f.Int64, nil
	case core.Text:
		v, err := field.Text()
		if err != nil {
			return false, err
		}
		return v == f.Text, nil
	default:
		return false, nil
	}
}

func (it *RowIter) Next() (Row, bool, error) {
	if it.single != nil {
		for {
			row, ok, err := it.single.Next()
			if err != nil {
				return Row{}, false, err
			}
			if !ok {
				if !it.scanned && !it.matched && it.filter != nil && it.filter.Type == core.BigInt {
					slog.Warn("fdb: BigInt primary-key lookup exhausted its bucket without a match; "+
						"the file may have been written with a different BigInt hash rule",
						"hash", it.filter.Hash, "key", it.filter.Int64)
				}
				it.scanned = true
				return Row{}, false, nil
			}
			if it.filter == nil {
				return row, true, nil
			}
			match, err := matchesFilter(row, it.filter)
			if err != nil {
				return Row{}, false, err
			}
			if match {
				it.matched = true
				return row, true, nil
			}
		}
	}
	for {
		if it.cur == nil {
			if it.bIdx >= it.buckets.Len() {
				return Row{}, false, nil
			}
			b, err := it.buckets.At(it.bIdx)
			if err != nil {
				return Row{}, false, err
			}
			it.bIdx++
			rows, err := b.Rows()
			if err != nil {
				return Row{}, false, err
			}
			it.cur = rows
		}
		row, ok, err := it.cur.Next()
		if err != nil {
			return Row{}, false, err
		}
		if ok {
			return row, true, nil
		}
		it.cur = nil
	}
}
