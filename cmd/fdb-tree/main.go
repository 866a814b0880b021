// Command fdb-tree dumps a database's full table/row/field tree as
// indented text, for quick visual inspection of a file's contents.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/LUDevNet/assembly-fdb/fdb/core"
	"github.com/LUDevNet/assembly-fdb/fdb/ro"
	"github.com/LUDevNet/assembly-fdb/internal/cliutil"
)

func main() {
	app := &cli.App{
		Name:  "fdb-tree",
		Usage: "dump the full table/row/field tree of an FDB database",
		Flags: append([]cli.Flag{cliutil.DatabaseFlag(), cliutil.TableFlag()}, cliutil.KlogFlags()...),
		Action: func(cctx *cli.Context) error {
			db, err := ro.OpenFile(cctx.String("db"))
			if err != nil {
				return err
			}
			tables, err := db.Tables()
			if err != nil {
				return err
			}
			filter := cctx.String("table")
			for i := 0; i < tables.Len(); i++ {
				t, err := tables.At(i)
				if err != nil {
					return err
				}
				name, err := t.Name()
				if err != nil {
					return err
				}
				if filter != "" && name != filter {
					continue
				}
				if err := dumpTable(name, t); err != nil {
					return err
				}
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fdb-tree:", err)
		os.Exit(1)
	}
}

func dumpTable(name string, t ro.Table) error {
	fmt.Printf("%s\n", name)
	cols, err := t.Columns()
	if err != nil {
		return fmt.Errorf("table %q: %w", name, err)
	}
	rows, err := t.Rows()
	if err != nil {
		return fmt.Errorf("table %q: %w", name, err)
	}
	for {
		row, ok, err := rows.Next()
		if err != nil {
			return fmt.Errorf("table %q: %w", name, err)
		}
		if !ok {
			break
		}
		fmt.Print("  row:")
		for i := 0; i < row.FieldCount(); i++ {
			f, _ := row.FieldAt(i)
			colName := ""
			if i < cols.Len() {
				if n, err := cols.At(i).Name(); err == nil {
					colName = n
				}
			}
			fmt.Printf(" %s=%s", colName, formatField(f))
		}
		fmt.Println()
	}
	return nil
}

func formatField(f ro.Field) string {
	switch f.Type() {
	case core.Nothing:
		return "NULL"
	case core.Integer:
		v, _ := f.Int32()
		return fmt.Sprint(v)
	case core.Float:
		v, _ := f.Float32()
		return fmt.Sprint(v)
	case core.Boolean:
		v, _ := f.Bool()
		return fmt.Sprint(v)
	case core.Text:
		v, _ := f.Text()
		return fmt.Sprintf("%q", v)
	case core.BigInt:
		v, _ := f.Int64()
		return fmt.Sprint(v)
	case core.VarChar:
		v, _ := f.VarChar()
		return fmt.Sprintf("%dB", len(v))
	default:
		return "?"
	}
}
