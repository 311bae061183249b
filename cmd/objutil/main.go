// Command objutil inspects YAML or JSON documents with the objectutil
// operations: kind classification, emptiness, dotted-path lookups,
// structural comparison and cloning.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	cmd := newRootCmd(os.Stdout, os.Stderr, color)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errDifferent) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "objutil:", err)
		os.Exit(2)
	}
}
