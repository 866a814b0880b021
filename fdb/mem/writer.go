package mem

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/fdb/raw"
	"github.com/LUDevNet/assembly-fdb/internal/latin1"
)

// Write serializes the database into the on-disk FDB layout and flushes it
// to w. Fails if any table has not reached the Sealed state. Follows the
// four-pass writer contract: sizes are computed up front (pass 1, folded
// into planDatabase below), the header and table-header array are
// positioned first (pass 2), then each table's def, name, columns, data,
// buckets and rows are laid out in forward order (pass 3) with every
// offset already 4-byte aligned by construction (pass 4).
//
// Every string and BigInt payload is emitted exactly once per occurrence;
// this writer does not deduplicate identical strings by content (the
// format allows, but does not require, that optimization).
func (d *Database) Write(w io.Writer) error {
	for _, t := range d.tables {
		if t.state != stateSealed {
			return fmt.Errorf("fdb/mem: table %q is not sealed", t.name)
		}
	}

	sorted := make([]*Table, len(d.tables))
	copy(sorted, d.tables)
	encNames := make(map[*Table][]byte, len(sorted))
	for _, t := range sorted {
		nb, err := latin1.Encode(t.name)
		if err != nil {
			return fmt.Errorf("fdb/mem: table %q: %w", t.name, err)
		}
		encNames[t] = nb
	}
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(encNames[sorted[i]], encNames[sorted[j]]) < 0
	})

	plan, err := planDatabase(sorted, encNames)
	if err != nil {
		return err
	}

	buf := bytes.NewBuffer(make([]byte, 0, plan.totalSize))
	if err := emitDatabase(buf, plan); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func align4(n int) int {
	if rem := n % 4; rem != 0 {
		n += 4 - rem
	}
	return n
}

// cstrSize is the on-disk size of a NUL-terminated, 4-byte-padded byte
// string: the content, one terminator byte, then zero-padding up to the
// next multiple of 4.
func cstrSize(content []byte) int {
	return align4(len(content) + 1)
}

type fieldPlan struct {
	raw           raw.FieldData
	payloadOffset uint32
	payload       []byte // nil if the field has no indirect payload
}

type rowPlan struct {
	consOffset   uint32
	headerOffset uint32
	fieldsOffset uint32
	fields       []fieldPlan
}

type tablePlan struct {
	table         *Table
	nameBytes     []byte
	defOffset     uint32
	nameOffset    uint32
	columnsOffset uint32
	colNameOffset []uint32
	colNameBytes  [][]byte
	dataOffset    uint32
	bucketsOffset uint32
	bucketHeads   []uint32 // per-bucket: offset of first row's cons cell, or raw.NoOffset
	rows          [][]rowPlan
}

type databasePlan struct {
	tableHeaderOffset uint32
	tables            []tablePlan
	totalSize         int
}

// planDatabase computes every offset the emit pass will need, without
// writing any bytes. sorted tables are already in their final (name-
// ascending) order.
func planDatabase(sorted []*Table, encNames map[*Table][]byte) (databasePlan, error) {
	running := uint32(raw.HeaderSize)
	tableHeaderOffset := running
	running += uint32(len(sorted)) * raw.TableHeaderSize

	plans := make([]tablePlan, len(sorted))
	for i, t := range sorted {
		tp := tablePlan{table: t, nameBytes: encNames[t]}

		tp.defOffset = running
		running += raw.TableDefSize

		tp.nameOffset = running
		running += uint32(cstrSize(tp.nameBytes))

		tp.columnsOffset = running
		running += uint32(len(t.columns)) * raw.ColumnHeaderSize

		tp.colNameOffset = make([]uint32, len(t.columns))
		tp.colNameBytes = make([][]byte, len(t.columns))
		for ci, col := range t.columns {
			nb, err := latin1.Encode(col.Name)
			if err != nil {
				return databasePlan{}, fmt.Errorf("fdb/mem: table %q column %q: %w", t.name, col.Name, err)
			}
			tp.colNameBytes[ci] = nb
			tp.colNameOffset[ci] = running
			running += uint32(cstrSize(nb))
		}

		tp.dataOffset = running
		running += raw.TableDataSize

		tp.bucketsOffset = running
		running += t.bucketCount * raw.BucketHeaderSize

		tp.bucketHeads = make([]uint32, t.bucketCount)
		tp.rows = make([][]rowPlan, t.bucketCount)
		for b := uint32(0); b < t.bucketCount; b++ {
			rowsInBucket := t.buckets[b]
			tp.rows[b] = make([]rowPlan, len(rowsInBucket))
			if len(rowsInBucket) == 0 {
				tp.bucketHeads[b] = raw.NoOffset
				continue
			}
			tp.bucketHeads[b] = running
			for ri, fields := range rowsInBucket {
				rp := rowPlan{consOffset: running}
				running += raw.RowHeaderConsSize
				rp.headerOffset = running
				running += raw.RowHeaderSize
				rp.fieldsOffset = running
				running += uint32(len(fields)) * raw.FieldDataSize

				rp.fields = make([]fieldPlan, len(fields))
				for fi, v := range fields {
					fp, payload, err := planField(v)
					if err != nil {
						return databasePlan{}, fmt.Errorf("fdb/mem: table %q row field %d: %w", t.name, fi, err)
					}
					if payload != nil {
						fp.payloadOffset = running
						fp.raw.Value = raw.PutUint32(running)
						running += uint32(cstrOrFixedSize(v.Type, payload))
					}
					fp.payload = payload
					rp.fields[fi] = fp
				}
				tp.rows[b][ri] = rp
			}
		}

		plans[i] = tp
	}

	return databasePlan{tableHeaderOffset: tableHeaderOffset, tables: plans, totalSize: int(running)}, nil
}

// cstrOrFixedSize returns the on-disk size of an indirect payload: BigInt
// payloads are a fixed 8 bytes (no terminator), Text/VarChar are
// NUL-terminated and padded.
func cstrOrFixedSize(t core.ValueType, payload []byte) int {
	if t == core.BigInt {
		return len(payload)
	}
	return cstrSize(payload)
}

// planField builds the FieldData record for v and, if the type is
// indirect, returns the raw bytes of its payload (BigInt: 8-byte LE;
// Text/VarChar: the encoded content without terminator). The returned
// fieldPlan's Value offset is filled in by the caller once the payload's
// final offset is known.
func planField(v Value) (fieldPlan, []byte, error) {
	switch v.Type {
	case core.Nothing:
		return fieldPlan{raw: raw.FieldData{DataType: uint32(core.Nothing)}}, nil, nil
	case core.Integer:
		return fieldPlan{raw: raw.FieldData{DataType: uint32(core.Integer), Value: raw.PutInt32(v.Int32)}}, nil, nil
	case core.Float:
		bits := math.Float32bits(v.Float32)
		return fieldPlan{raw: raw.FieldData{DataType: uint32(core.Float), Value: raw.PutUint32(bits)}}, nil, nil
	case core.Boolean:
		val := [4]byte{0, 0, 0, 0}
		if v.Bool {
			val = [4]byte{1, 0, 0, 0}
		}
		return fieldPlan{raw: raw.FieldData{DataType: uint32(core.Boolean), Value: val}}, nil, nil
	case core.Text:
		b, err := latin1.Encode(v.Text)
		if err != nil {
			return fieldPlan{}, nil, err
		}
		return fieldPlan{raw: raw.FieldData{DataType: uint32(core.Text)}}, b, nil
	case core.BigInt:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, uint64(v.Int64))
		return fieldPlan{raw: raw.FieldData{DataType: uint32(core.BigInt)}}, b, nil
	case core.VarChar:
		return fieldPlan{raw: raw.FieldData{DataType: uint32(core.VarChar)}}, v.VarChar, nil
	default:
		return fieldPlan{}, nil, fmt.Errorf("unknown value type %d", v.Type)
	}
}

func emitDatabase(buf *bytes.Buffer, plan databasePlan) error {
	header := raw.Header{Tables: raw.Array{Count: uint32(len(plan.tables)), BaseOffset: plan.tableHeaderOffset}}
	headerBuf := make([]byte, raw.HeaderSize)
	header.Store(headerBuf)
	buf.Write(headerBuf)

	for _, tp := range plan.tables {
		th := raw.TableHeader{Def: tp.defOffset, Data: tp.dataOffset}
		b := make([]byte, raw.TableHeaderSize)
		th.Store(b)
		buf.Write(b)
	}

	for _, tp := range plan.tables {
		def := raw.TableDef{
			ColumnCount:   uint32(len(tp.table.columns)),
			NameOffset:    tp.nameOffset,
			ColumnsOffset: tp.columnsOffset,
		}
		b := make([]byte, raw.TableDefSize)
		def.Store(b)
		buf.Write(b)

		writeCStr(buf, tp.nameBytes)

		for ci, col := range tp.table.columns {
			ch := raw.ColumnHeader{DataType: uint32(col.Type), NameOffset: tp.colNameOffset[ci]}
			b := make([]byte, raw.ColumnHeaderSize)
			ch.Store(b)
			buf.Write(b)
		}
		for _, nb := range tp.colNameBytes {
			writeCStr(buf, nb)
		}

		data := raw.TableData{Buckets: raw.Array{Count: tp.table.bucketCount, BaseOffset: tp.bucketsOffset}}
		b2 := make([]byte, raw.TableDataSize)
		data.Store(b2)
		buf.Write(b2)

		for _, head := range tp.bucketHeads {
			bh := raw.BucketHeader{Head: head}
			b := make([]byte, raw.BucketHeaderSize)
			bh.Store(b)
			buf.Write(b)
		}

		for b := range tp.rows {
			rows := tp.rows[b]
			for ri, rp := range rows {
				rest := uint32(raw.NoOffset)
				if ri+1 < len(rows) {
					rest = rows[ri+1].consOffset
				}
				cons := raw.RowHeaderCons{First: rp.headerOffset, Rest: rest}
				cb := make([]byte, raw.RowHeaderConsSize)
				cons.Store(cb)
				buf.Write(cb)

				rh := raw.RowHeader{Fields: raw.Array{Count: uint32(len(rp.fields)), BaseOffset: rp.fieldsOffset}}
				rb := make([]byte, raw.RowHeaderSize)
				rh.Store(rb)
				buf.Write(rb)

				for _, fp := range rp.fields {
					fb := make([]byte, raw.FieldDataSize)
					fp.raw.Store(fb)
					buf.Write(fb)
				}
				for _, fp := range rp.fields {
					if fp.payload == nil {
						continue
					}
					if fp.raw.DataType == uint32(core.BigInt) {
						buf.Write(fp.payload)
					} else {
						writeCStr(buf, fp.payload)
					}
				}
			}
		}
	}
	return nil
}

func writeCStr(buf *bytes.Buffer, content []byte) {
	buf.Write(content)
	padded := cstrSize(content)
	zeros := padded - len(content)
	buf.Write(make([]byte, zeros))
}
