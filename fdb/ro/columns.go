package ro

import (
	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/fdb/cursor"
	"github.com/LUDevNet/assembly-fdb/fdb/raw"
)

// Columns is the positional column list of a table.
type Columns struct {
	c       cursor.Cursor
	headers cursor.Slice[raw.ColumnHeader]
}

func (c Columns) Len() int {
	return c.headers.Len()
}

func (c Columns) At(i int) Column {
	return Column{c: c.c, h: c.headers.At(i)}
}

// Column is one entry of a table's schema.
type Column struct {
	c cursor.Cursor
	h raw.ColumnHeader
}

func (c Column) DataType() core.ValueType {
	return core.ValueType(c.h.DataType)
}

func (c Column) Name() (string, error) {
	b, err := c.c.CStr(c.h.NameOffset)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
