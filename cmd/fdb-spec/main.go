// Command fdb-spec prints the column/type layout of every table in a
// database, one table per paragraph, without touching any row data.
// Useful for diffing schemas between two client versions.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/LUDevNet/assembly-fdb/fdb/ro"
	"github.com/LUDevNet/assembly-fdb/internal/cliutil"
)

func main() {
	app := &cli.App{
		Name:  "fdb-spec",
		Usage: "print the schema of every table in an FDB database",
		Flags: append([]cli.Flag{cliutil.DatabaseFlag()}, cliutil.KlogFlags()...),
		Action: func(cctx *cli.Context) error {
			db, err := ro.OpenFile(cctx.String("db"))
			if err != nil {
				return err
			}
			tables, err := db.Tables()
			if err != nil {
				return err
			}
			for i := 0; i < tables.Len(); i++ {
				t, err := tables.At(i)
				if err != nil {
					return fmt.Errorf("reading table %d: %w", i, err)
				}
				name, err := t.Name()
				if err != nil {
					return fmt.Errorf("reading table %d name: %w", i, err)
				}
				cols, err := t.Columns()
				if err != nil {
					return fmt.Errorf("table %q: %w", name, err)
				}
				fmt.Printf("%s (%d buckets)\n", name, t.BucketCount())
				for c := 0; c < cols.Len(); c++ {
					col := cols.At(c)
					colName, err := col.Name()
					if err != nil {
						return fmt.Errorf("table %q column %d: %w", name, c, err)
					}
					pk := ""
					if c == 0 {
						pk = " PRIMARY KEY"
					}
					fmt.Printf("  %-32s %s%s\n", colName, col.DataType(), pk)
				}
				fmt.Println()
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fdb-spec:", err)
		os.Exit(1)
	}
}
