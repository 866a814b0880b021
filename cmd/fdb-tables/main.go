// Command fdb-tables lists the tables in an FDB database, one per line,
// with their column and bucket counts.
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
		Name:  "fdb-tables",
		Usage: "list the tables in an FDB database",
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
				fmt.Printf("%-32s columns=%-4d buckets=%-4d\n", name, t.ColumnCount(), t.BucketCount())
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fdb-tables:", err)
		os.Exit(1)
	}
}
