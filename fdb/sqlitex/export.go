// Package sqlitex exports a zero-copy FDB view into a SQLite database.
// Grounded field-for-field on the original implementation's
// try_export_db: one BEGIN...COMMIT transaction, a CREATE TABLE IF NOT
// EXISTS per table with a type-affinity mapping, and a prepared,
// positionally-bound INSERT per row. Uses database/sql with
// modernc.org/sqlite, adopted from the sibling example repo's stack since
// the teacher itself has no SQL dependency to reuse (see DESIGN.md).
package sqlitex

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/fdb/ro"
)

// affinity maps an FDB value type to its SQLite column affinity, per the
// format's type-mapping table. Nothing maps to NULL, an affinity name
// SQLite accepts but that also means "no enforced type" for that column.
func affinity(t core.ValueType) (string, error) {
	switch t {
	case core.Nothing:
		return "NULL", nil
	case core.Integer, core.Boolean, core.BigInt:
		return "INTEGER", nil
	case core.Float:
		return "REAL", nil
	case core.Text:
		return "TEXT", nil
	case core.VarChar:
		return "BLOB", nil
	default:
		return "", fmt.Errorf("sqlitex: unknown column value type %s", t)
	}
}

// Export reads every table of db and writes it into conn inside a single
// transaction. Pure-read on db, pure-write on conn; no rollback beyond
// ordinary SQL transaction semantics is attempted on failure.
func Export(ctx context.Context, conn *sql.DB, db ro.Database) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlitex: BEGIN: %w", err)
	}
	if err := exportTx(ctx, tx, db); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlitex: COMMIT: %w", err)
	}
	return nil
}

func exportTx(ctx context.Context, tx *sql.Tx, db ro.Database) error {
	tables, err := db.Tables()
	if err != nil {
		return fmt.Errorf("sqlitex: reading table list: %w", err)
	}
	for i := 0; i < tables.Len(); i++ {
		table, err := tables.At(i)
		if err != nil {
			return fmt.Errorf("sqlitex: reading table %d: %w", i, err)
		}
		if err := exportTable(ctx, tx, table); err != nil {
			return err
		}
	}
	return nil
}

func exportTable(ctx context.Context, tx *sql.Tx, table ro.Table) error {
	name, err := table.Name()
	if err != nil {
		return fmt.Errorf("sqlitex: reading table name: %w", err)
	}
	cols, err := table.Columns()
	if err != nil {
		return fmt.Errorf("sqlitex: table %q: reading columns: %w", name, err)
	}

	colNames := make([]string, cols.Len())
	var createCols []string
	for i := 0; i < cols.Len(); i++ {
		col := cols.At(i)
		colName, err := col.Name()
		if err != nil {
			return fmt.Errorf("sqlitex: table %q column %d: reading name: %w", name, i, err)
		}
		aff, err := affinity(col.DataType())
		if err != nil {
			return fmt.Errorf("sqlitex: table %q column %q: %w", name, colName, err)
		}
		colNames[i] = colName
		createCols = append(createCols, fmt.Sprintf("[%s] %s", colName, aff))
	}

	createQuery := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (\n    %s\n);", name, strings.Join(createCols, ",\n    "))
	if _, err := tx.ExecContext(ctx, createQuery); err != nil {
		return fmt.Errorf("sqlitex: table %q: %w", name, err)
	}

	placeholders := make([]string, len(colNames))
	quotedCols := make([]string, len(colNames))
	for i, n := range colNames {
		placeholders[i] = "?"
		quotedCols[i] = fmt.Sprintf("[%s]", n)
	}
	insertQuery := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s);", name, strings.Join(quotedCols, ", "), strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("sqlitex: table %q: preparing insert: %w", name, err)
	}
	defer stmt.Close()

	rows, err := table.Rows()
	if err != nil {
		return fmt.Errorf("sqlitex: table %q: reading rows: %w", name, err)
	}
	args := make([]any, len(colNames))
	for {
		row, ok, err := rows.Next()
		if err != nil {
			return fmt.Errorf("sqlitex: table %q: %w", name, err)
		}
		if !ok {
			break
		}
		for i := range colNames {
			field, ok := row.FieldAt(i)
			if !ok {
				args[i] = nil
				continue
			}
			v, err := bindValue(field)
			if err != nil {
				return fmt.Errorf("sqlitex: table %q: %w", name, err)
			}
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("sqlitex: table %q: insert: %w", name, err)
		}
	}
	return nil
}

// bindValue converts a field into a database/sql-bindable value. Nothing
// binds as SQL NULL regardless of its column's declared type.
func bindValue(f ro.Field) (any, error) {
	switch f.Type() {
	case core.Nothing:
		return nil, nil
	case core.Integer:
		return f.Int32()
	case core.Float:
		return f.Float32()
	case core.Text:
		return f.Text()
	case core.Boolean:
		v, err := f.Bool()
		if err != nil {
			return nil, err
		}
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	case core.BigInt:
		return f.Int64()
	case core.VarChar:
		return f.VarChar()
	default:
		return nil, fmt.Errorf("unknown field type %s", f.Type())
	}
}
