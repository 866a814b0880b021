// Package core holds the small set of types shared by the zero-copy view
// (fdb/ro) and the owned builder (fdb/mem): the closed value-type domain
// and the error taxonomy every layer above fdb/cursor reports through.
// Latin-1 conversion lives in internal/latin1, not here.
//
// The original design expresses a value as a type generic over a
// "context" (file-backed, owned, or in-memory-mapped) so that one Value<C>
// definition serves all three materializations. Go has no associated-type
// generics to express that cleanly, so this package instead defines one
// closed ValueType enum shared by both concrete representations: fdb/ro's
// Field decodes lazily from a Cursor, fdb/mem's Value is an owned Go value;
// both tag themselves with the same ValueType.
package core

import "fmt"

// ValueType is the closed domain of a field's data_type tag.
type ValueType uint32

const (
	Nothing ValueType = 0
	Integer ValueType = 1
	Float   ValueType = 3
	Text    ValueType = 4
	Boolean ValueType = 5
	BigInt  ValueType = 6
	VarChar ValueType = 8
)

func (t ValueType) Valid() bool {
	switch t {
	case Nothing, Integer, Float, Text, Boolean, BigInt, VarChar:
		return true
	default:
		return false
	}
}

func (t ValueType) String() string {
	switch t {
	case Nothing:
		return "NOTHING"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case Text:
		return "TEXT"
	case Boolean:
		return "BOOLEAN"
	case BigInt:
		return "BIGINT"
	case VarChar:
		return "VARCHAR"
	default:
		return fmt.Sprintf("ValueType(%d)", uint32(t))
	}
}

// Indirect reports whether a value of this type is stored out-of-line,
// referenced by a u32 offset in the field's inline payload, rather than
// directly inline in the 4 payload bytes.
func (t ValueType) Indirect() bool {
	switch t {
	case Text, BigInt, VarChar:
		return true
	default:
		return false
	}
}
