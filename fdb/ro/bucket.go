package ro

import (
	"github.com/LUDevNet/assembly-fdb/fdb/cursor"
	"github.com/LUDevNet/assembly-fdb/fdb/raw"
)

// Buckets is a table's hash array.
type Buckets struct {
	c       cursor.Cursor
	headers cursor.Slice[raw.BucketHeader]
}

func (b Buckets) Len() int {
	return b.headers.Len()
}

func (b Buckets) At(i int) (Bucket, error) {
	return Bucket{c: b.c, h: b.headers.At(i)}, nil
}

// Bucket is one slot of a table's hash array: a singly-linked list of
// rows, or empty if Head == raw.NoOffset.
type Bucket struct {
	c cursor.Cursor
	h raw.BucketHeader
}

func (b Bucket) IsEmpty() bool {
	return b.h.IsEmpty()
}

// Rows returns an iterator that walks the cons list until Rest ==
// raw.NoOffset.
func (b Bucket) Rows() (*bucketRowIter, error) {
	return &bucketRowIter{c: b.c, next: b.h.Head}, nil
}

// bucketRowIter walks one bucket's row cons-list. Non-restartable: callers
// wanting a second pass re-obtain it from Bucket.Rows.
type bucketRowIter struct {
	c    cursor.Cursor
	next uint32
	done bool
}

// Next advances the iterator. Returns (Row{}, false, nil) at the natural
// end of the list. A non-nil error means the cons cell or row header at
// the current position could not be read; the iterator is exhausted after
// that (this bucket's traversal stops, sibling buckets are unaffected).
func (it *bucketRowIter) Next() (Row, bool, error) {
	if it.done || it.next == raw.NoOffset {
		return Row{}, false, nil
	}
	cell, err := cursor.Cast(it.c, it.next, rowHeaderConsDecoder)
	if err != nil {
		it.done = true
		return Row{}, false, err
	}
	rh, err := cursor.Cast(it.c, cell.First, rowHeaderDecoder)
	if err != nil {
		it.done = true
		return Row{}, false, err
	}
	fields, err := cursor.CastSlice(it.c, rh.Fields.BaseOffset, rh.Fields.Count, fieldDataDecoder)
	if err != nil {
		it.done = true
		return Row{}, false, err
	}
	it.next = cell.Rest
	return Row{c: it.c, fields: fields}, true, nil
}
