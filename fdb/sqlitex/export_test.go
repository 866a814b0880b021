package sqlitex_test

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/LUDevNet/assembly-fdb/fdb/mem"
	"github.com/LUDevNet/assembly-fdb/fdb/ro"
	"github.com/LUDevNet/assembly-fdb/fdb/sqlitex"
)

func buildObjectsDB(t *testing.T) ro.Database {
	t.Helper()
	db := mem.NewDatabase()
	tbl, err := db.AddTable("Objects")
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	if err := tbl.SetColumns([]mem.ColumnDef{
		{Name: "id", Type: 1},     // core.Integer
		{Name: "name", Type: 4},   // core.Text
		{Name: "weight", Type: 3}, // core.Float
		{Name: "active", Type: 5}, // core.Boolean
		{Name: "guid", Type: 6},   // core.BigInt
		{Name: "blob", Type: 8},   // core.VarChar
	}); err != nil {
		t.Fatalf("SetColumns: %v", err)
	}
	if err := tbl.SetBucketCount(4); err != nil {
		t.Fatalf("SetBucketCount: %v", err)
	}
	if err := tbl.InsertRow([]mem.Value{
		mem.IntegerValue(1),
		mem.TextValue("widget"),
		mem.FloatValue(1.5),
		mem.BooleanValue(true),
		mem.BigIntValue(123456789012345),
		mem.VarCharValue([]byte{0xDE, 0xAD, 0xBE, 0xEF}),
	}); err != nil {
		t.Fatalf("InsertRow 1: %v", err)
	}
	if err := tbl.InsertRow([]mem.Value{
		mem.IntegerValue(2),
		mem.NothingValue(),
		mem.NothingValue(),
		mem.BooleanValue(false),
		mem.NothingValue(),
		mem.NothingValue(),
	}); err != nil {
		t.Fatalf("InsertRow 2: %v", err)
	}
	if err := tbl.Seal(); err != nil {
		t.Fatalf("Seal: %v", err)
	}

	var buf bytes.Buffer
	if err := db.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	view, err := ro.Open(buf.Bytes())
	if err != nil {
		t.Fatalf("ro.Open: %v", err)
	}
	return view
}

func TestExportCreatesTableAndRows(t *testing.T) {
	view := buildObjectsDB(t)

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer conn.Close()

	if err := sqlitex.Export(context.Background(), conn, view); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM "Objects"`).Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 2 {
		t.Fatalf("row count = %d, want 2", count)
	}

	var id int64
	var name sql.NullString
	var weight sql.NullFloat64
	var active int64
	var guid sql.NullInt64
	var blob []byte
	row := conn.QueryRow(`SELECT id, name, weight, active, guid, blob FROM "Objects" WHERE id = 1`)
	if err := row.Scan(&id, &name, &weight, &active, &guid, &blob); err != nil {
		t.Fatalf("scan row 1: %v", err)
	}
	if !name.Valid || name.String != "widget" {
		t.Fatalf("name = %v, want widget", name)
	}
	if !weight.Valid || weight.Float64 != float64(float32(1.5)) {
		t.Fatalf("weight = %v, want 1.5", weight)
	}
	if active != 1 {
		t.Fatalf("active = %d, want 1", active)
	}
	if !guid.Valid || guid.Int64 != 123456789012345 {
		t.Fatalf("guid = %v, want 123456789012345", guid)
	}
	if !bytes.Equal(blob, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("blob = % x, want de ad be ef", blob)
	}

	var name2 sql.NullString
	var active2 int64
	row2 := conn.QueryRow(`SELECT name, active FROM "Objects" WHERE id = 2`)
	if err := row2.Scan(&name2, &active2); err != nil {
		t.Fatalf("scan row 2: %v", err)
	}
	if name2.Valid {
		t.Fatalf("name2 = %v, want NULL", name2)
	}
	if active2 != 0 {
		t.Fatalf("active2 = %d, want 0", active2)
	}
}

func TestExportEmptyDatabase(t *testing.T) {
	db := mem.NewDatabase()
	var buf bytes.Buffer
	if err := db.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	view, err := ro.Open(buf.Bytes())
	if err != nil {
		t.Fatalf("ro.Open: %v", err)
	}

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer conn.Close()

	if err := sqlitex.Export(context.Background(), conn, view); err != nil {
		t.Fatalf("Export of empty database: %v", err)
	}
}
