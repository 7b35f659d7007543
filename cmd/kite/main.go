// Package main is the entry point for the kite editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/kite/internal/app"
	"github.com/dshills/kite/internal/render/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := parseFlags()

	editor, err := app.New(cfg, backend.NewTerminal())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := editor.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Config {
	var cfg app.Config
	var showVersion bool

	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&cfg.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kite - a small text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: kite [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kite                Open with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  kite file.txt       Open a file\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("kite %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if cfg.LogLevel != "" {
		switch cfg.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", cfg.LogLevel)
			os.Exit(1)
		}
	}

	if flag.NArg() > 0 {
		cfg.FilePath = flag.Arg(0)
	}
	return cfg
}
