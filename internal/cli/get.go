package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

func cmdGet(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("get", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.StringP("dir", "d", "", "data directory")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: kvs get [-d dir] <KEY>")
		return 1
	}
	key := fs.Arg(0)

	e, err := openEngine(*dir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer e.Close()

	value, ok, err := e.Get(key)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintln(stdout, "Key not found")
		return 0
	}
	fmt.Fprintln(stdout, value)
	return 0
}
