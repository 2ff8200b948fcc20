package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

func cmdSet(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("set", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.StringP("dir", "d", "", "data directory")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: kvs set [-d dir] <KEY> <VALUE>")
		return 1
	}
	key, value := fs.Arg(0), fs.Arg(1)

	e, err := openEngine(*dir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer e.Close()

	if err := e.Set(key, value); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
