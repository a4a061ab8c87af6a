// Command build-labels writes .github/labels.json from the label sources in
// src/labels.
//
// Usage:
//
//	build-labels [--include-optional]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/labelset/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Build failures are already reported by the command; cobra's own
	// errors (unknown flag, unexpected argument) are not.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
