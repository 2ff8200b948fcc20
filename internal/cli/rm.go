package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/minidb/kvs/internal/kverrors"
)

func cmdRemove(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("rm", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.StringP("dir", "d", "", "data directory")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: kvs rm [-d dir] <KEY>")
		return 1
	}
	key := fs.Arg(0)

	e, err := openEngine(*dir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer e.Close()

	if err := e.Remove(key); err != nil {
		if errors.Is(err, kverrors.ErrKeyNotFound) {
			fmt.Fprintln(stdout, "Key not found")
			return 1
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
