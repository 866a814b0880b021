package query

import (
	"testing"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
)

func TestSuperFastHashEmpty(t *testing.T) {
	if got := SuperFastHash(nil); got != 0 {
		t.Fatalf("SuperFastHash(\"\") = %d, want 0", got)
	}
	if got := SuperFastHash([]byte{}); got != 0 {
		t.Fatalf("SuperFastHash([]byte{}) = %d, want 0", got)
	}
}

func TestSuperFastHashDeterministic(t *testing.T) {
	a := SuperFastHash([]byte("Hello"))
	b := SuperFastHash([]byte("Hello"))
	if a != b {
		t.Fatalf("hash not deterministic: %d != %d", a, b)
	}
	if a == SuperFastHash([]byte("Hellp")) {
		t.Fatal("expected different hashes for different inputs")
	}
}

func TestIntegerHash(t *testing.T) {
	if got := IntegerHash(42); got != 42 {
		t.Fatalf("IntegerHash(42) = %d, want 42", got)
	}
	if got := IntegerHash(-1); got != 0xFFFFFFFF {
		t.Fatalf("IntegerHash(-1) = %#x, want 0xFFFFFFFF", got)
	}
}

func TestBigIntHash(t *testing.T) {
	if got := BigIntHash(42); got != 42 {
		t.Fatalf("BigIntHash(42) = %d, want 42", got)
	}
	if got := BigIntHash(-1); got != 0xFFFFFFFF {
		t.Fatalf("BigIntHash(-1) = %#x, want 0xFFFFFFFF", got)
	}
	// Low 32 bits of a value whose high word is nonzero.
	if got := BigIntHash(0x1_0000_0001); got != 1 {
		t.Fatalf("BigIntHash(0x100000001) = %d, want 1", got)
	}
}

func TestNewFilterRejectsUnsupportedTypes(t *testing.T) {
	for _, vt := range []core.ValueType{core.Nothing, core.Float, core.Boolean, core.VarChar} {
		if _, err := NewFilter(vt, "1"); err == nil {
			t.Fatalf("expected error for value type %s", vt)
		}
	}
}

func TestIntegerFilterParse(t *testing.T) {
	f, err := IntegerFilter("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Int32 != 42 || f.Hash != 42 {
		t.Fatalf("got %+v", f)
	}
	if _, err := IntegerFilter("not-a-number"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTextFilterHash(t *testing.T) {
	f := TextFilter("Hello")
	if f.Hash != SuperFastHash([]byte("Hello")) {
		t.Fatalf("filter hash does not match SuperFastHash")
	}
	if f.Text != "Hello" {
		t.Fatalf("filter text = %q", f.Text)
	}
}
