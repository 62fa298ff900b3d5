package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]
	logger := newLogger(os.Stderr)

	switch cmd {
	case "run":
		cfg, err := ParseConfig(flag.NewFlagSet("run", flag.ExitOnError), args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := run(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil {
			logger.Printf("stopped: %v", err)
			stop()
			os.Exit(1)
		}
	case "snapshot":
		cfg, err := ParseConfig(flag.NewFlagSet("snapshot", flag.ExitOnError), args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := snapshot(cfg, os.Stdout, logger); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("surface version %s\n", version)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `surface - remote UI runtime for constrained devices

Usage:
  surface <command> [flags]

Commands:
  run        Serve the device loop over stdio or TCP
  snapshot   Print one snapshot frame of the layout and exit
  version    Print version
  help       Show this help

Flags for run and snapshot (environment variable in brackets):
  -layout string       YAML layout file [SURFACE_LAYOUT]
  -interval duration   Snapshot cadence, default 200ms [SURFACE_INTERVAL]
  -format string       json or msgpack, default json [SURFACE_FORMAT]
  -max-frame int       Frame capacity in bytes, default 1024 [SURFACE_MAX_FRAME]
  -listen string       TCP address; one client at a time [SURFACE_LISTEN]
  -preview string      HTTP address for the HTML preview [SURFACE_PREVIEW_ADDR]
  -report-unknown      Answer updates for unknown ids [SURFACE_REPORT_UNKNOWN]

Examples:
  surface run                                  Demo layout on stdin/stdout
  surface run -layout panel.yaml -listen :7000 Serve a layout over TCP
  surface snapshot -layout panel.yaml          Check that a layout fits one frame`)
}
