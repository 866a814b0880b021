package mem_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LUDevNet/assembly-fdb/fdb/mem"
	"github.com/LUDevNet/assembly-fdb/fdb/ro"
)

// TestRoundTripMultipleTablesAndBuckets builds a database with several
// tables, non-trivial bucket counts, and a deliberate hash collision
// within one table, writes it, reads it back, and checks the table order
// and per-table row counts of the snapshot; it then writes the same
// database again and requires the two snapshots to be equal.
func TestRoundTripMultipleTablesAndBuckets(t *testing.T) {
	db := mem.NewDatabase()

	zones, err := db.AddTable("Zones")
	if err != nil {
		t.Fatalf("AddTable Zones: %v", err)
	}
	if err := zones.SetColumns([]mem.ColumnDef{
		{Name: "zone_id", Type: 1}, // Integer
		{Name: "name", Type: 4},    // Text
	}); err != nil {
		t.Fatalf("SetColumns Zones: %v", err)
	}
	if err := zones.SetBucketCount(4); err != nil {
		t.Fatalf("SetBucketCount Zones: %v", err)
	}
	// 1 and 5 collide mod 4: exercises the bucket-chain walk.
	for _, id := range []int32{1, 5, 2, 9} {
		if err := zones.InsertRow([]mem.Value{
			mem.IntegerValue(id),
			mem.TextValue(strconv.Itoa(int(id))),
		}); err != nil {
			t.Fatalf("InsertRow Zones %d: %v", id, err)
		}
	}
	if err := zones.Seal(); err != nil {
		t.Fatalf("Seal Zones: %v", err)
	}

	components, err := db.AddTable("Components")
	if err != nil {
		t.Fatalf("AddTable Components: %v", err)
	}
	if err := components.SetColumns([]mem.ColumnDef{
		{Name: "id", Type: 6}, // BigInt
		{Name: "flag", Type: 5},
	}); err != nil {
		t.Fatalf("SetColumns Components: %v", err)
	}
	if err := components.SetBucketCount(3); err != nil {
		t.Fatalf("SetBucketCount Components: %v", err)
	}
	for i, id := range []int64{100, 101, 5_000_000_000} {
		if err := components.InsertRow([]mem.Value{
			mem.BigIntValue(id),
			mem.BooleanValue(i%2 == 0),
		}); err != nil {
			t.Fatalf("InsertRow Components %d: %v", id, err)
		}
	}
	if err := components.Seal(); err != nil {
		t.Fatalf("Seal Components: %v", err)
	}

	var buf bytes.Buffer
	if err := db.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	view, err := ro.Open(buf.Bytes())
	if err != nil {
		t.Fatalf("ro.Open: %v", err)
	}
	got, err := ro.Snapshot(view)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if len(got.Tables) != 2 {
		t.Fatalf("len(Tables) = %d, want 2", len(got.Tables))
	}
	// Table list is sorted ascending by name on write: Components < Zones.
	if got.Tables[0].Name != "Components" || got.Tables[1].Name != "Zones" {
		t.Fatalf("table order = %q, %q, want Components, Zones", got.Tables[0].Name, got.Tables[1].Name)
	}
	if len(got.Tables[1].Rows) != 4 {
		t.Fatalf("Zones row count = %d, want 4", len(got.Tables[1].Rows))
	}
	if len(got.Tables[0].Rows) != 3 {
		t.Fatalf("Components row count = %d, want 3", len(got.Tables[0].Rows))
	}

	// Re-serializing the snapshot's source database and re-snapshotting
	// must be a no-op: same input, same structural output.
	var buf2 bytes.Buffer
	if err := db.Write(&buf2); err != nil {
		t.Fatalf("Write (2nd): %v", err)
	}
	view2, err := ro.Open(buf2.Bytes())
	if err != nil {
		t.Fatalf("ro.Open (2nd): %v", err)
	}
	got2, err := ro.Snapshot(view2)
	if err != nil {
		t.Fatalf("Snapshot (2nd): %v", err)
	}
	if diff := cmp.Diff(got, got2); diff != "" {
		t.Fatalf("snapshot mismatch across identical writes (-first +second):\n%s", diff)
	}
}
