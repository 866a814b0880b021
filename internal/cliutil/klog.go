// Package cliutil provides the shared urfave/cli/v2 flag set every
// cmd/fdb-* binary registers, so verbosity and a couple of common
// input flags behave identically across tools. Grounded on the
// teacher's root klog.go, trimmed to the flags that matter for a
// short-lived CLI rather than a long-running server (no log rotation
// knobs).
package cliutil

import (
	"flag"
	"fmt"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

// KlogFlags returns the verbosity flag set every fdb-* command shares,
// wired into klog the same way the teacher's NewKlogFlagSet does.
func KlogFlags() []cli.Flag {
	fs := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(fs)

	fs.Set("logtostderr", "true")
	fs.Set("v", "0")

	return []cli.Flag{
		&cli.IntFlag{
			Name:    "v",
			Usage:   "number for the log level verbosity",
			EnvVars: []string{"FDB_V"},
			Value:   0,
			Action: func(cctx *cli.Context, v int) error {
				return fs.Set("v", fmt.Sprint(v))
			},
		},
		&cli.BoolFlag{
			Name:    "logtostderr",
			Usage:   "log to standard error instead of files",
			EnvVars: []string{"FDB_LOGTOSTDERR"},
			Value:   true,
			Action: func(cctx *cli.Context, v bool) error {
				return fs.Set("logtostderr", fmt.Sprint(v))
			},
		},
		&cli.StringFlag{
			Name:    "vmodule",
			Usage:   "comma-separated list of pattern=N settings for file-filtered logging",
			EnvVars: []string{"FDB_VMODULE"},
			Action: func(cctx *cli.Context, v string) error {
				if v != "" {
					return fs.Set("vmodule", v)
				}
				return nil
			},
		},
	}
}

// DatabaseFlag is the one positional-equivalent flag shared by every
// fdb-* tool that reads a database file.
func DatabaseFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"f"},
		Usage:    "path to an .fdb database file",
		EnvVars:  []string{"FDB_PATH"},
		Required: true,
	}
}

// TableFlag narrows an operation to a single named table.
func TableFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "table",
		Aliases: []string{"t"},
		Usage:   "table name to operate on (default: all tables)",
	}
}

// PKFlag carries a textual primary-key value for a lookup subcommand.
func PKFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "pk",
		Usage:    "primary key value to look up, in its column's textual form",
		Required: true,
	}
}
