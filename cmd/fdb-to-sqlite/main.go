// Command fdb-to-sqlite exports an FDB database into a SQLite file via
// fdb/sqlitex.Export. When --metrics-addr is set, it also exposes a
// Prometheus counter of rows exported per table, grounded on the
// teacher's metrics package (promauto-registered vectors, scraped over
// plain net/http rather than the teacher's fasthttp, since this is a
// one-shot batch tool, not a long-lived server).
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	_ "modernc.org/sqlite"

	"github.com/LUDevNet/assembly-fdb/fdb/ro"
	"github.com/LUDevNet/assembly-fdb/fdb/sqlitex"
	"github.com/LUDevNet/assembly-fdb/internal/cliutil"
)

var rowsExported = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fdb_to_sqlite_rows_exported",
		Help: "Rows exported per table",
	},
	[]string{"table"},
)

func main() {
	app := &cli.App{
		Name:  "fdb-to-sqlite",
		Usage: "export an FDB database to a SQLite file",
		Flags: append([]cli.Flag{
			cliutil.DatabaseFlag(),
			&cli.StringFlag{Name: "out", Required: true, Usage: "path to the SQLite file to create"},
			&cli.StringFlag{Name: "metrics-addr", Usage: "if set, serve Prometheus metrics on this address while exporting"},
		}, cliutil.KlogFlags()...),
		Action: func(cctx *cli.Context) error {
			if addr := cctx.String("metrics-addr"); addr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				srv := &http.Server{Addr: addr, Handler: mux}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						klog.Errorf("metrics server: %v", err)
					}
				}()
				defer srv.Close()
			}

			src, err := ro.OpenFile(cctx.String("db"))
			if err != nil {
				return err
			}

			os.Remove(cctx.String("out"))
			conn, err := sql.Open("sqlite", cctx.String("out"))
			if err != nil {
				return fmt.Errorf("opening %s: %w", cctx.String("out"), err)
			}
			defer conn.Close()

			ctx := context.Background()
			if err := countRows(src); err != nil {
				return err
			}
			if err := sqlitex.Export(ctx, conn, src); err != nil {
				return err
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fdb-to-sqlite:", err)
		os.Exit(1)
	}
}

// countRows walks src once to populate rowsExported before the write
// transaction runs, since sqlitex.Export itself reports no per-table
// progress.
func countRows(db ro.Database) error {
	tables, err := db.Tables()
	if err != nil {
		return err
	}
	for i := 0; i < tables.Len(); i++ {
		table, err := tables.At(i)
		if err != nil {
			return err
		}
		name, err := table.Name()
		if err != nil {
			return err
		}
		rows, err := table.Rows()
		if err != nil {
			return fmt.Errorf("table %q: %w", name, err)
		}
		count := 0
		for {
			_, ok, err := rows.Next()
			if err != nil {
				return fmt.Errorf("table %q: %w", name, err)
			}
			if !ok {
				break
			}
			count++
		}
		rowsExported.WithLabelValues(name).Add(float64(count))
	}
	return nil
}
