package raw

import "testing"

// Record sizes are frozen on disk; a change here is a format break.
func TestSizes(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"Header", HeaderSize, 8},
		{"TableHeader", TableHeaderSize, 8},
		{"TableDef", TableDefSize, 12},
		{"ColumnHeader", ColumnHeaderSize, 8},
		{"TableData", TableDataSize, 8},
		{"BucketHeader", BucketHeaderSize, 4},
		{"RowHeaderCons", RowHeaderConsSize, 8},
		{"RowHeader", RowHeaderSize, 8},
		{"FieldData", FieldDataSize, 8},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s size = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestEmptyHeaderBytes(t *testing.T) {
	// The canonical empty-database encoding: zero tables, list starts
	// immediately after the 8-byte header.
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00}
	h := Header{Tables: Array{Count: 0, BaseOffset: 8}}
	buf := make([]byte, HeaderSize)
	h.Store(buf)
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, buf[i], want[i])
		}
	}
	got := LoadHeader(want)
	if got.Tables.Count != 0 || got.Tables.BaseOffset != 8 {
		t.Fatalf("LoadHeader(empty) = %+v", got)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	a := Array{Count: 3, BaseOffset: 16}
	buf := make([]byte, ArraySize)
	a.Store(buf)
	got := LoadArray(buf)
	if got != a {
		t.Fatalf("round trip: got %+v, want %+v", got, a)
	}
}

func TestBucketHeaderEmpty(t *testing.T) {
	b := BucketHeader{Head: NoOffset}
	if !b.IsEmpty() {
		t.Fatal("expected empty bucket")
	}
}

func TestRowHeaderConsTermination(t *testing.T) {
	c := RowHeaderCons{First: 4, Rest: NoOffset}
	if c.HasNext() {
		t.Fatal("expected terminal cons cell")
	}
}

func TestFieldDataInline(t *testing.T) {
	f := FieldData{DataType: 1, Value: PutInt32(-5)}
	if f.Int32() != -5 {
		t.Fatalf("Int32() = %d, want -5", f.Int32())
	}
}
