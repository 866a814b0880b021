// Command fdb-columns lists the columns of one table, with their
// declared value type, the PK column marked.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/LUDevNet/assembly-fdb/fdb/ro"
	"github.com/LUDevNet/assembly-fdb/internal/cliutil"
)

func main() {
	tableFlag := cliutil.TableFlag()
	tableFlag.Required = true
	app := &cli.App{
		Name:  "fdb-columns",
		Usage: "list the columns of one table",
		Flags: append([]cli.Flag{cliutil.DatabaseFlag(), tableFlag}, cliutil.KlogFlags()...),
		Action: func(cctx *cli.Context) error {
			db, err := ro.OpenFile(cctx.String("db"))
			if err != nil {
				return err
			}
			tables, err := db.Tables()
			if err != nil {
				return err
			}
			table, found, err := tables.ByName(cctx.String("table"))
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no such table: %s", cctx.String("table"))
			}
			cols, err := table.Columns()
			if err != nil {
				return err
			}
			for i := 0; i < cols.Len(); i++ {
				col := cols.At(i)
				name, err := col.Name()
				if err != nil {
					return fmt.Errorf("reading column %d name: %w", i, err)
				}
				pk := ""
				if i == 0 {
					pk = " (primary key)"
				}
				fmt.Printf("%-32s %-10s%s\n", name, col.DataType(), pk)
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fdb-columns:", err)
		os.Exit(1)
	}
}
