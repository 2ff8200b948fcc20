// Package cli implements the kvs command-line front end: it parses the
// set/get/rm subcommands and translates engine results into exit codes
// and messages. It is an external collaborator of the storage engine,
// not part of the core.
package cli

import (
	"fmt"
	"io"

	"github.com/minidb/kvs/internal/config"
	"github.com/minidb/kvs/internal/engine"
)

const usage = `Usage: kvs <command> [options]

Commands:
  set <KEY> <VALUE>   Store a key-value pair
  get <KEY>           Print the value for a key, or "Key not found"
  rm <KEY>            Remove a key

Options:
  -d, --dir <path>    Data directory (default: current directory)`

// Run dispatches a single kvs invocation and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	command, rest := args[0], args[1:]
	switch command {
	case "set":
		return cmdSet(rest, stdout, stderr)
	case "get":
		return cmdGet(rest, stdout, stderr)
	case "rm":
		return cmdRemove(rest, stdout, stderr)
	case "-h", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", command)
		fmt.Fprintln(stderr, usage)
		return 1
	}
}

// openEngine loads the ambient config, applies an explicit --dir override
// if given, and opens the engine on the resolved data directory.
func openEngine(dirOverride string) (*engine.Engine, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if dirOverride != "" {
		cfg.DataDir = dirOverride
	}
	return engine.OpenWithConfig(cfg)
}
