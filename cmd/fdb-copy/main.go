// Command fdb-copy reads a database and re-serializes it through the
// fdb/mem builder, producing a new .fdb file. Useful as a round-trip
// smoke test and for repacking a database with a different bucket count.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/fdb/mem"
	"github.com/LUDevNet/assembly-fdb/fdb/ro"
	"github.com/LUDevNet/assembly-fdb/internal/cliutil"
)

func main() {
	app := &cli.App{
		Name:  "fdb-copy",
		Usage: "re-serialize a database through the builder",
		Flags: append([]cli.Flag{
			cliutil.DatabaseFlag(),
			&cli.StringFlag{Name: "out", Required: true, Usage: "path to write the new .fdb file"},
			&cli.UintFlag{Name: "buckets", Value: 0, Usage: "override bucket count per table (0 keeps the source count)"},
		}, cliutil.KlogFlags()...),
		Action: func(cctx *cli.Context) error {
			src, err := ro.OpenFile(cctx.String("db"))
			if err != nil {
				return err
			}
			out, err := copyDatabase(src, uint32(cctx.Uint("buckets")))
			if err != nil {
				return err
			}
			f, err := os.Create(cctx.String("out"))
			if err != nil {
				return err
			}
			defer f.Close()
			return out.Write(f)
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fdb-copy:", err)
		os.Exit(1)
	}
}

func copyDatabase(src ro.Database, bucketOverride uint32) (*mem.Database, error) {
	srcTables, err := src.Tables()
	if err != nil {
		return nil, err
	}
	dst := mem.NewDatabase()
	for i := 0; i < srcTables.Len(); i++ {
		srcTable, err := srcTables.At(i)
		if err != nil {
			return nil, err
		}
		name, err := srcTable.Name()
		if err != nil {
			return nil, err
		}
		dstTable, err := dst.AddTable(name)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		cols, err := srcTable.Columns()
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		defs := make([]mem.ColumnDef, cols.Len())
		for c := 0; c < cols.Len(); c++ {
			col := cols.At(c)
			cn, err := col.Name()
			if err != nil {
				return nil, fmt.Errorf("table %q column %d: %w", name, c, err)
			}
			defs[c] = mem.ColumnDef{Name: cn, Type: col.DataType()}
		}
		if err := dstTable.SetColumns(defs); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		bucketCount := srcTable.BucketCount()
		if bucketOverride > 0 {
			bucketCount = bucketOverride
		}
		if err := dstTable.SetBucketCount(bucketCount); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		rows, err := srcTable.Rows()
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		for {
			row, ok, err := rows.Next()
			if err != nil {
				return nil, fmt.Errorf("table %q: %w", name, err)
			}
			if !ok {
				break
			}
			values := make([]mem.Value, row.FieldCount())
			for fi := 0; fi < row.FieldCount(); fi++ {
				field, _ := row.FieldAt(fi)
				v, err := copyValue(field)
				if err != nil {
					return nil, fmt.Errorf("table %q field %d: %w", name, fi, err)
				}
				values[fi] = v
			}
			if err := dstTable.InsertRow(values); err != nil {
				return nil, fmt.Errorf("table %q: %w", name, err)
			}
		}
		if err := dstTable.Seal(); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
	}
	return dst, nil
}

func copyValue(f ro.Field) (mem.Value, error) {
	switch f.Type() {
	case core.Nothing:
		return mem.NothingValue(), nil
	case core.Integer:
		v, err := f.Int32()
		return mem.IntegerValue(v), err
	case core.Float:
		v, err := f.Float32()
		return mem.FloatValue(v), err
	case core.Boolean:
		v, err := f.Bool()
		return mem.BooleanValue(v), err
	case core.Text:
		v, err := f.Text()
		return mem.TextValue(v), err
	case core.BigInt:
		v, err := f.Int64()
		return mem.BigIntValue(v), err
	case core.VarChar:
		v, err := f.VarChar()
		return mem.VarCharValue(v), err
	default:
		return mem.Value{}, fmt.Errorf("fdb-copy: unknown field type %s", f.Type())
	}
}
