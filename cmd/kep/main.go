// Command kep runs a shell command and caches its standard output on disk.
//
//	kep [duration] <command...>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rshade/kep/internal/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // Set by the linker.
var version = "dev"

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	err := cli.NewRootCmd(version).Execute()
	return reportError(os.Stderr, err)
}

// extractExitCode maps an error returned by the root command to an exit code.
// An *cli.ExitError anywhere in the chain supplies its own code; any other
// error is a generic failure (1).
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// reportError prints unexpected errors and returns the exit code for err.
// ExitErrors are not printed: the command has already written its own output.
func reportError(w io.Writer, err error) int {
	code := extractExitCode(err)
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	}
	return code
}
