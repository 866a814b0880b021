package core

import "fmt"

// errorType mirrors store/types' pattern of string-constant sentinel
// errors for the stateless error kinds: a plain string IS the error, no
// offending offset or value to carry.
type errorType string

func (e errorType) Error() string {
	return string(e)
}

const (
	// ErrStringEncoding never actually fires: Latin-1 is a total
	// decoding of every byte value. It is kept in the taxonomy because
	// the design calls it out explicitly as a defined-but-unreachable
	// error kind.
	ErrStringEncoding = errorType("fdb: byte sequence is not valid Latin-1")

	// ErrTableNotFound names the table-miss error kind. Tables.ByName
	// does not return it: it reports a miss as found == false with a nil
	// error.
	ErrTableNotFound = errorType("fdb: table not found")

	ErrUnsupportedKeyType = errorType("fdb: primary key column must be Integer, BigInt or Text")

	ErrKeyParse = errorType("fdb: key does not parse as the column's value type")
)

// UnknownValueTypeError reports a data_type tag outside the closed domain.
// Carries the offending code and a file offset field; the field accessors
// in fdb/ro set only Code and leave Offset at 0.
type UnknownValueTypeError struct {
	Code   uint32
	Offset uint32
}

func (e *UnknownValueTypeError) Error() string {
	return fmt.Sprintf("fdb: unknown value type %d at offset %d", e.Code, e.Offset)
}
