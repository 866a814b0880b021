// Package raw defines the fixed-size records that make up the on-disk image
// of an FDB file, byte-for-byte. Nothing in this package interprets a record;
// it only knows how to load one from, or store one to, a 4-byte-aligned
// offset in a byte buffer. Every higher layer goes through here for the
// actual field widths and offsets.
package raw

import "encoding/binary"

// Align is the alignment every on-disk record is guaranteed to start at.
const Align = 4

// Array is the universal (count, base offset) pair used by every owning
// record in the format. The count precedes the offset on disk. An empty
// array MAY use BaseOffset = NoOffset.
type Array struct {
	Count      uint32
	BaseOffset uint32
}

const ArraySize = 8

// NoOffset marks an absent/empty reference (0xFFFFFFFF) wherever one of these
// records uses it: Array.BaseOffset for an empty array, BucketHeader.Head for
// an empty bucket, RowHeaderCons.Rest for the list terminator.
const NoOffset uint32 = 0xFFFFFFFF

func (a Array) IsEmpty() bool {
	return a.Count == 0 || a.BaseOffset == NoOffset
}

func LoadArray(buf []byte) Array {
	return Array{
		Count:      binary.LittleEndian.Uint32(buf[0:4]),
		BaseOffset: binary.LittleEndian.Uint32(buf[4:8]),
	}
}

func (a Array) Store(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], a.Count)
	binary.LittleEndian.PutUint32(buf[4:8], a.BaseOffset)
}

// Header sits at offset 0 of every FDB file.
type Header struct {
	Tables Array
}

const HeaderSize = ArraySize

func LoadHeader(buf []byte) Header {
	return Header{Tables: LoadArray(buf[0:8])}
}

func (h Header) Store(buf []byte) {
	h.Tables.Store(buf[0:8])
}

// TableHeader is one entry of Header.Tables: the def/data pair for a table.
type TableHeader struct {
	Def  uint32
	Data uint32
}

const TableHeaderSize = 8

func LoadTableHeader(buf []byte) TableHeader {
	return TableHeader{
		Def:  binary.LittleEndian.Uint32(buf[0:4]),
		Data: binary.LittleEndian.Uint32(buf[4:8]),
	}
}

func (t TableHeader) Store(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], t.Def)
	binary.LittleEndian.PutUint32(buf[4:8], t.Data)
}

// TableDef is a table's schema: column count, table name, and the columns
// array. It is 12 bytes: a 4-byte count followed by two Arrays is not quite
// right, so the layout is count/name_offset/columns_offset, each 4 bytes.
type TableDef struct {
	ColumnCount   uint32
	NameOffset    uint32
	ColumnsOffset uint32
}

const TableDefSize = 12

func LoadTableDef(buf []byte) TableDef {
	return TableDef{
		ColumnCount:   binary.LittleEndian.Uint32(buf[0:4]),
		NameOffset:    binary.LittleEndian.Uint32(buf[4:8]),
		ColumnsOffset: binary.LittleEndian.Uint32(buf[8:12]),
	}
}

func (d TableDef) Store(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], d.ColumnCount)
	binary.LittleEndian.PutUint32(buf[4:8], d.NameOffset)
	binary.LittleEndian.PutUint32(buf[8:12], d.ColumnsOffset)
}

// ColumnHeader names and types one column of a TableDef.
type ColumnHeader struct {
	DataType   uint32
	NameOffset uint32
}

const ColumnHeaderSize = 8

func LoadColumnHeader(buf []byte) ColumnHeader {
	return ColumnHeader{
		DataType:   binary.LittleEndian.Uint32(buf[0:4]),
		NameOffset: binary.LittleEndian.Uint32(buf[4:8]),
	}
}

func (c ColumnHeader) Store(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], c.DataType)
	binary.LittleEndian.PutUint32(buf[4:8], c.NameOffset)
}

// TableData is a table's contents: the buckets array. Buckets.Count is the
// hash modulus for the table.
type TableData struct {
	Buckets Array
}

const TableDataSize = ArraySize

func LoadTableData(buf []byte) TableData {
	return TableData{Buckets: LoadArray(buf[0:8])}
}

func (d TableData) Store(buf []byte) {
	d.Buckets.Store(buf[0:8])
}

// BucketHeader is one slot of TableData.Buckets: the head of a row
// cons-list, or NoOffset if the bucket is empty.
type BucketHeader struct {
	Head uint32
}

const BucketHeaderSize = 4

func LoadBucketHeader(buf []byte) BucketHeader {
	return BucketHeader{Head: binary.LittleEndian.Uint32(buf[0:4])}
}

func (b BucketHeader) Store(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], b.Head)
}

func (b BucketHeader) IsEmpty() bool {
	return b.Head == NoOffset
}

// RowHeaderCons is a cons cell in a bucket's row list: First points at a
// RowHeader, Rest at the next cell or NoOffset to terminate.
type RowHeaderCons struct {
	First uint32
	Rest  uint32
}

const RowHeaderConsSize = 8

func LoadRowHeaderCons(buf []byte) RowHeaderCons {
	return RowHeaderCons{
		First: binary.LittleEndian.Uint32(buf[0:4]),
		Rest:  binary.LittleEndian.Uint32(buf[4:8]),
	}
}

func (c RowHeaderCons) Store(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], c.First)
	binary.LittleEndian.PutUint32(buf[4:8], c.Rest)
}

func (c RowHeaderCons) HasNext() bool {
	return c.Rest != NoOffset
}

// RowHeader owns the fields array for a single row.
type RowHeader struct {
	Fields Array
}

const RowHeaderSize = ArraySize

func LoadRowHeader(buf []byte) RowHeader {
	return RowHeader{Fields: LoadArray(buf[0:8])}
}

func (r RowHeader) Store(buf []byte) {
	r.Fields.Store(buf[0:8])
}

// FieldData is one value within a row: an 8-value type tag plus 4 bytes of
// inline payload (either the value itself, or an offset to it).
type FieldData struct {
	DataType uint32
	Value    [4]byte
}

const FieldDataSize = 8

func LoadFieldData(buf []byte) FieldData {
	var f FieldData
	f.DataType = binary.LittleEndian.Uint32(buf[0:4])
	copy(f.Value[:], buf[4:8])
	return f
}

func (f FieldData) Store(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], f.DataType)
	copy(buf[4:8], f.Value[:])
}

func (f FieldData) Uint32() uint32 {
	return binary.LittleEndian.Uint32(f.Value[:])
}

func (f FieldData) Int32() int32 {
	return int32(binary.LittleEndian.Uint32(f.Value[:]))
}

func PutUint32(v uint32) (out [4]byte) {
	binary.LittleEndian.PutUint32(out[:], v)
	return
}

func PutInt32(v int32) (out [4]byte) {
	binary.LittleEndian.PutUint32(out[:], uint32(v))
	return
}
