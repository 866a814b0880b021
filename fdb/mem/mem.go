// Package mem is the owned, mutable mirror of fdb/ro: a builder that can
// be assembled programmatically, in any order, and then serialized back
// to the on-disk FDB layout in one forward pass. Grounded on the
// teacher's compactindexsized.Builder (NewBuilderSized/Insert/
// SealAndClose: accumulate into per-bucket scratch, then seal in one pass
// with all offsets forward-known) generalized from one flat table to the
// nested Database -> Table -> Bucket -> Row -> Field tree this format
// needs. Unlike the teacher, bucket assignment here is a deterministic
// hash(first field) mod bucket_count, not a mined collision-free hash, so
// Insert computes the bucket directly via fdb/query instead of brute-
// forcing a domain (compactindexsized.tempBucket.mine has no analogue
// here).
package mem

import (
	"fmt"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
)

// Value is an owned field value: exactly one of the closed domain's
// payload shapes is populated, selected by Type.
type Value struct {
	Type    core.ValueType
	Int32   int32
	Float32 float32
	Bool    bool
	Text    string
	Int64   int64
	VarChar []byte
}

func NothingValue() Value                { return Value{Type: core.Nothing} }
func IntegerValue(v int32) Value         { return Value{Type: core.Integer, Int32: v} }
func FloatValue(v float32) Value         { return Value{Type: core.Float, Float32: v} }
func BooleanValue(v bool) Value          { return Value{Type: core.Boolean, Bool: v} }
func TextValue(v string) Value           { return Value{Type: core.Text, Text: v} }
func BigIntValue(v int64) Value          { return Value{Type: core.BigInt, Int64: v} }
func VarCharValue(v []byte) Value        { return Value{Type: core.VarChar, VarChar: v} }

// ColumnDef names and types one column in a table schema.
type ColumnDef struct {
	Name string
	Type core.ValueType
}

// tableState is the writer's per-table state machine: Empty -> Columns? ->
// Rows? -> Sealed. Write requires every table to have reached Sealed.
type tableState int

const (
	stateEmpty tableState = iota
	stateColumns
	stateRows
	stateSealed
)

// Table is the owned mirror of a table: columns plus bucket-indexed row
// lists of owned field values.
type Table struct {
	name        string
	columns     []ColumnDef
	bucketCount uint32
	buckets     [][][]Value
	state       tableState
}

func newTable(name string) *Table {
	return &Table{name: name, bucketCount: 1, buckets: make([][][]Value, 1), state: stateEmpty}
}

func (t *Table) Name() string { return t.name }

// SetColumns fixes the table's schema. May only be called once, from the
// Empty state.
func (t *Table) SetColumns(cols []ColumnDef) error {
	if t.state != stateEmpty {
		return fmt.Errorf("fdb/mem: table %q: SetColumns called outside Empty state", t.name)
	}
	if len(cols) == 0 {
		return fmt.Errorf("fdb/mem: table %q: must have at least one column", t.name)
	}
	t.columns = cols
	t.state = stateColumns
	return nil
}

// SetBucketCount fixes the table's hash modulus. Must be called before the
// first InsertRow; defaults to 1 if never called.
func (t *Table) SetBucketCount(n uint32) error {
	if t.state >= stateRows {
		return fmt.Errorf("fdb/mem: table %q: SetBucketCount called after rows were inserted", t.name)
	}
	if n == 0 {
		return fmt.Errorf("fdb/mem: table %q: bucket count must be > 0", t.name)
	}
	t.bucketCount = n
	t.buckets = make([][][]Value, n)
	return nil
}

func (t *Table) BucketCount() uint32 { return t.bucketCount }
func (t *Table) Columns() []ColumnDef { return t.columns }

// InsertRow validates field/column-count agreement, computes the bucket
// from the first field's hash, and appends the row to that bucket. Bucket
// index out of range and field/column count mismatch are invariants
// refused here, at insert time, not deferred to write time.
func (t *Table) InsertRow(fields []Value) error {
	if t.state == stateEmpty {
		return fmt.Errorf("fdb/mem: table %q: InsertRow before SetColumns", t.name)
	}
	if len(fields) != len(t.columns) {
		return fmt.Errorf("fdb/mem: table %q: row has %d fields, want %d", t.name, len(fields), len(t.columns))
	}
	bucket, err := rowBucket(fields, t.columns, t.bucketCount)
	if err != nil {
		return err
	}
	t.buckets[bucket] = append(t.buckets[bucket], fields)
	t.state = stateRows
	return nil
}

// Seal transitions the table to its terminal state. Write refuses to
// serialize a database with unsealed tables.
func (t *Table) Seal() error {
	if t.state == stateEmpty {
		return fmt.Errorf("fdb/mem: table %q: cannot seal a table with no columns", t.name)
	}
	t.state = stateSealed
	return nil
}

// Database is the owned mirror of a Database: an ordered list of
// (name, Table) pairs. Tables may be created in any order; the writer
// re-sorts them by name ascending so the view layer's binary-search
// invariant holds.
type Database struct {
	tables []*Table
	byName map[string]*Table
}

func NewDatabase() *Database {
	return &Database{byName: make(map[string]*Table)}
}

// AddTable creates a new, empty table. Fails if a table with this name
// already exists.
func (d *Database) AddTable(name string) (*Table, error) {
	if _, exists := d.byName[name]; exists {
		return nil, fmt.Errorf("fdb/mem: table %q already exists", name)
	}
	t := newTable(name)
	d.tables = append(d.tables, t)
	d.byName[name] = t
	return t, nil
}

func (d *Database) Table(name string) (*Table, bool) {
	t, ok := d.byName[name]
	return t, ok
}

func (d *Database) Tables() []*Table {
	return d.tables
}
