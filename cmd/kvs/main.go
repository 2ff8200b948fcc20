// Package main provides the entry point for the kvs command-line key-value
// store. It initializes structured logging, loads configuration, and
// dispatches a single set/get/rm invocation before exiting.
package main

import (
	"log/slog"
	"os"

	"github.com/minidb/kvs/internal/cli"
	"github.com/minidb/kvs/internal/config"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("main: failed to load configuration", "error", err)
		os.Exit(1)
	}

	slogHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	slog.SetDefault(slog.New(slogHandler))

	slog.Debug("main: configuration loaded",
		"data_dir", cfg.DataDir,
		"compaction_threshold", cfg.CompactionThreshold,
		"log_level", cfg.LogLevel,
	)

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
