package ro

import (
	"fmt"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
)

// FieldSnapshot is one field's fully-decoded value, detached from the
// backing buffer. Exactly one of the payload fields is meaningful,
// selected by Type (mirrors fdb/mem.Value's shape, one layer up from the
// wire format).
type FieldSnapshot struct {
	Type    core.ValueType
	Int32   int32
	Float32 float32
	Bool    bool
	Text    string
	Int64   int64
	VarChar []byte
}

// ColumnSnapshot is one column's schema entry.
type ColumnSnapshot struct {
	Name string
	Type core.ValueType
}

// TableSnapshot is one table's schema plus every row, in bucket-walk
// order. Ordering is the format's own, not re-sorted by any key, so two
// snapshots of logically-identical but differently-serialized data (e.g.
// after a different bucket_count) may legitimately order rows
// differently; compare by set membership when that matters, not by
// Snapshot equality directly.
type TableSnapshot struct {
	Name        string
	Columns     []ColumnSnapshot
	BucketCount uint32
	Rows        [][]FieldSnapshot
}

// DatabaseSnapshot is a fully-materialized, go-cmp-comparable copy of a
// Database's contents. Built for the round-trip property test (write a
// mem.Database, read it back, snapshot, compare) and reused by
// cmd/fdb-diff for structural comparison of two files.
type DatabaseSnapshot struct {
	Tables []TableSnapshot
}

// Snapshot walks every table, bucket and row of db and copies their
// contents into a plain Go value tree detached from the source buffer.
func Snapshot(db Database) (DatabaseSnapshot, error) {
	tables, err := db.Tables()
	if err != nil {
		return DatabaseSnapshot{}, err
	}
	out := DatabaseSnapshot{Tables: make([]TableSnapshot, 0, tables.Len())}
	for i := 0; i < tables.Len(); i++ {
		t, err := tables.At(i)
		if err != nil {
			return DatabaseSnapshot{}, fmt.Errorf("fdb: snapshotting table %d: %w", i, err)
		}
		ts, err := snapshotTable(t)
		if err != nil {
			return DatabaseSnapshot{}, err
		}
		out.Tables = append(out.Tables, ts)
	}
	return out, nil
}

func snapshotTable(t Table) (TableSnapshot, error) {
	name, err := t.Name()
	if err != nil {
		return TableSnapshot{}, fmt.Errorf("fdb: reading table name: %w", err)
	}
	cols, err := t.Columns()
	if err != nil {
		return TableSnapshot{}, fmt.Errorf("fdb: table %q: reading columns: %w", name, err)
	}
	ts := TableSnapshot{
		Name:        name,
		Columns:     make([]ColumnSnapshot, cols.Len()),
		BucketCount: t.BucketCount(),
	}
	for i := 0; i < cols.Len(); i++ {
		col := cols.At(i)
		cn, err := col.Name()
		if err != nil {
			return TableSnapshot{}, fmt.Errorf("fdb: table %q column %d: reading name: %w", name, i, err)
		}
		ts.Columns[i] = ColumnSnapshot{Name: cn, Type: col.DataType()}
	}

	rows, err := t.Rows()
	if err != nil {
		return TableSnapshot{}, fmt.Errorf("fdb: table %q: reading rows: %w", name, err)
	}
	for {
		row, ok, err := rows.Next()
		if err != nil {
			return TableSnapshot{}, fmt.Errorf("fdb: table %q: %w", name, err)
		}
		if !ok {
			break
		}
		fields := make([]FieldSnapshot, row.FieldCount())
		for i := 0; i < row.FieldCount(); i++ {
			f, _ := row.FieldAt(i)
			fs, err := snapshotField(f)
			if err != nil {
				return TableSnapshot{}, fmt.Errorf("fdb: table %q: field %d: %w", name, i, err)
			}
			fields[i] = fs
		}
		ts.Rows = append(ts.Rows, fields)
	}
	return ts, nil
}

func snapshotField(f Field) (FieldSnapshot, error) {
	switch f.Type() {
	case core.Nothing:
		return FieldSnapshot{Type: core.Nothing}, nil
	case core.Integer:
		v, err := f.Int32()
		return FieldSnapshot{Type: core.Integer, Int32: v}, err
	case core.Float:
		v, err := f.Float32()
		return FieldSnapshot{Type: core.Float, Float32: v}, err
	case core.Boolean:
		v, err := f.Bool()
		return FieldSnapshot{Type: core.Boolean, Bool: v}, err
	case core.Text:
		v, err := f.Text()
		return FieldSnapshot{Type: core.Text, Text: v}, err
	case core.BigInt:
		v, err := f.Int64()
		return FieldSnapshot{Type: core.BigInt, Int64: v}, err
	case core.VarChar:
		v, err := f.VarChar()
		return FieldSnapshot{Type: core.VarChar, VarChar: v}, err
	default:
		return FieldSnapshot{}, &core.UnknownValueTypeError{Code: uint32(f.Type())}
	}
}
