package ro

import (
	"github.com/LUDevNet/assembly-fdb/fdb/cursor"
	"github.com/LUDevNet/assembly-fdb/fdb/query"
	"github.com/LUDevNet/assembly-fdb/fdb/raw"
)

// Table is a handle to one table's schema (def) and contents (data).
type Table struct {
	c    cursor.Cursor
	def  raw.TableDef
	data raw.TableData
}

func (t Table) Name() (string, error) {
	b, err := t.c.CStr(t.def.NameOffset)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (t Table) ColumnCount() uint32 {
	return t.def.ColumnCount
}

// Columns returns a lazily-decoded handle over the column list.
func (t Table) Columns() (Columns, error) {
	s, err := cursor.CastSlice(t.c, t.def.ColumnsOffset, t.def.ColumnCount, columnHeaderDecoder)
	if err != nil {
		return Columns{}, err
	}
	return Columns{c: t.c, headers: s}, nil
}

func (t Table) BucketCount() uint32 {
	return t.data.Buckets.Count
}

// Buckets returns a lazily-decoded handle over the bucket array.
func (t Table) Buckets() (Buckets, error) {
	s, err := cursor.CastSlice(t.c, t.data.Buckets.BaseOffset, t.data.Buckets.Count, bucketHeaderDecoder)
	if err != nil {
		return Buckets{}, err
	}
	return Buckets{c: t.c, headers: s}, nil
}

// Rows returns a flat iterator over all rows of all buckets, in bucket
// order. A corrupt bucket only stops that bucket's portion of the walk:
// the iterator reports the error on the step that hit it, and a further
// call to Next continues with the next bucket.
func (t Table) Rows() (*RowIter, error) {
	buckets, err := t.Buckets()
	if err != nil {
		return nil, err
	}
	return &RowIter{buckets: buckets}, nil
}

// RowIterForPK narrows the walk to the single bucket that a key with the
// given textual representation would hash into, then confirms each
// candidate by full value equality (never by hash alone: collisions are
// real and possible, see query.Filter).
func (t Table) RowIterForPK(key string) (*RowIter, error) {
	cols, err := t.Columns()
	if err != nil {
		return nil, err
	}
	if cols.Len() == 0 {
		return &RowIter{}, nil
	}
	pkType := cols.At(0).DataType()
	filter, err := query.NewFilter(pkType, key)
	if err != nil {
		return nil, err
	}
	if t.data.Buckets.Count == 0 {
		return &RowIter{}, nil
	}
	buckets, err := t.Buckets()
	if err != nil {
		return nil, err
	}
	bucketIdx := int(filter.Hash % t.data.Buckets.Count)
	bh, err := buckets.At(bucketIdx)
	if err != nil {
		return nil, err
	}
	rows, err := bh.Rows()
	if err != nil {
		return nil, err
	}
	return &RowIter{single: rows, filter: &filter}, nil
}
