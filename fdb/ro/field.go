package ro

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/fdb/cursor"
	"github.com/LUDevNet/assembly-fdb/fdb/raw"
	"github.com/LUDevNet/assembly-fdb/internal/latin1"
)

// Field is one value within a row: a discriminated union matching the
// format's closed value-type domain. String-typed variants decode lazily,
// returning a freshly-decoded Latin-1 string rather than a borrowed slice,
// since Go strings are immutable copies by nature.
type Field struct {
	c cursor.Cursor
	d raw.FieldData
}

func (f Field) Type() core.ValueType {
	return core.ValueType(f.d.DataType)
}

// Int32 decodes an Integer field. Returns an UnknownValueTypeError if the
// field's own data_type isn't Integer (a field's type may disagree with
// its column's declared type, most commonly Nothing for NULLs).
func (f Field) Int32() (int32, error) {
	if f.Type() != core.Integer {
		return 0, &core.UnknownValueTypeError{Code: uint32(f.Type())}
	}
	return f.d.Int32(), nil
}

func (f Field) Float32() (float32, error) {
	if f.Type() != core.Float {
		return 0, &core.UnknownValueTypeError{Code: uint32(f.Type())}
	}
	return math.Float32frombits(f.d.Uint32()), nil
}

func (f Field) Bool() (bool, error) {
	if f.Type() != core.Boolean {
		return false, &core.UnknownValueTypeError{Code: uint32(f.Type())}
	}
	return f.d.Value != [4]byte{0, 0, 0, 0}, nil
}

// Text decodes a Text field: value is a u32 offset to a NUL-terminated
// Latin-1 string.
func (f Field) Text() (string, error) {
	if f.Type() != core.Text {
		return "", &core.UnknownValueTypeError{Code: uint32(f.Type())}
	}
	b, err := f.c.CStr(f.d.Uint32())
	if err != nil {
		return "", err
	}
	return latin1.Decode(b), nil
}

// Int64 decodes a BigInt field: value is a u32 offset to an 8-byte
// little-endian signed integer.
func (f Field) Int64() (int64, error) {
	if f.Type() != core.BigInt {
		return 0, &core.UnknownValueTypeError{Code: uint32(f.Type())}
	}
	off := f.d.Uint32()
	end := uint64(off) + 8
	if end > uint64(f.c.Len()) {
		return 0, fmt.Errorf("fdb: bigint payload at offset %d exceeds buffer", off)
	}
	return int64(binary.LittleEndian.Uint64(f.c.Bytes()[off:end])), nil
}

// VarChar decodes a VarChar field: value is a u32 offset to a
// NUL-terminated Latin-1 byte blob, returned without Latin-1 decoding
// since VarChar is an opaque byte payload, not necessarily text.
func (f Field) VarChar() ([]byte, error) {
	if f.Type() != core.VarChar {
		return nil, &core.UnknownValueTypeError{Code: uint32(f.Type())}
	}
	return f.c.CStr(f.d.Uint32())
}
