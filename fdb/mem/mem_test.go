package mem

import "testing"

func TestInsertRowRejectsFieldCountMismatch(t *testing.T) {
	tbl := newTable("T")
	if err := tbl.SetColumns([]ColumnDef{{Name: "id", Type: 1}}); err != nil {
		t.Fatalf("SetColumns: %v", err)
	}
	if err := tbl.InsertRow([]Value{IntegerValue(1), IntegerValue(2)}); err == nil {
		t.Fatal("expected error for field/column count mismatch")
	}
}

func TestSealRequiresColumns(t *testing.T) {
	tbl := newTable("T")
	if err := tbl.Seal(); err == nil {
		t.Fatal("expected error sealing a columnless table")
	}
}

func TestBucketPlacement(t *testing.T) {
	tbl := newTable("T")
	if err := tbl.SetColumns([]ColumnDef{{Name: "id", Type: 1}}); err != nil {
		t.Fatalf("SetColumns: %v", err)
	}
	if err := tbl.SetBucketCount(4); err != nil {
		t.Fatalf("SetBucketCount: %v", err)
	}
	if err := tbl.InsertRow([]Value{IntegerValue(5)}); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	wantBucket := uint32(5) % 4
	if len(tbl.buckets[wantBucket]) != 1 {
		t.Fatalf("expected row in bucket %d, buckets = %v", wantBucket, tbl.buckets)
	}
}

func TestHashCollisionKeepsBothRowsRetrievableByExactMatch(t *testing.T) {
	tbl := newTable("T")
	if err := tbl.SetColumns([]ColumnDef{{Name: "id", Type: 1}}); err != nil {
		t.Fatalf("SetColumns: %v", err)
	}
	if err := tbl.SetBucketCount(4); err != nil {
		t.Fatalf("SetBucketCount: %v", err)
	}
	// 1 and 5 collide mod 4.
	if err := tbl.InsertRow([]Value{IntegerValue(1)}); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	if err := tbl.InsertRow([]Value{IntegerValue(5)}); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	if len(tbl.buckets[1]) != 2 {
		t.Fatalf("expected both rows in bucket 1, got %v", tbl.buckets)
	}
}
