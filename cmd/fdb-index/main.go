// Command fdb-index dumps the bucket/row layout of one table: the
// number of buckets, and for each bucket the number of rows it holds.
// Useful for spotting hash-collision hotspots in a given file.
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
		Name:  "fdb-index",
		Usage: "dump the bucket layout of one table",
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
			buckets, err := table.Buckets()
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d buckets\n", cctx.String("table"), buckets.Len())
			total := 0
			for i := 0; i < buckets.Len(); i++ {
				b, err := buckets.At(i)
				if err != nil {
					return fmt.Errorf("bucket %d: %w", i, err)
				}
				rows, err := b.Rows()
				if err != nil {
					return fmt.Errorf("bucket %d: %w", i, err)
				}
				count := 0
				for {
					_, ok, err := rows.Next()
					if err != nil {
						return fmt.Errorf("bucket %d: %w", i, err)
					}
					if !ok {
						break
					}
					count++
				}
				total += count
				fmt.Printf("  bucket %-6d rows=%d\n", i, count)
			}
			fmt.Printf("total rows: %d\n", total)
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fdb-index:", err)
		os.Exit(1)
	}
}
