package ro

import "testing"

func TestOpenEmptyDatabase(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00}
	db, err := Open(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tables, err := db.Tables()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tables.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tables.Len())
	}
	_, found, err := tables.ByName("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected miss on empty database")
	}
}

func TestOpenTruncatedHeader(t *testing.T) {
	if _, err := Open([]byte{0, 0, 0}); err == nil {
		t.Fatal("expected error for truncated header")
	}
}
