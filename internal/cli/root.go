// Package cli implements the kep command: argument handling, cache lookup,
// command execution and output relay.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/kep/internal/cache"
	"github.com/rshade/kep/internal/runner"
)

// Store is the cache backend used by the driver.
type Store interface {
	Read(key string, ttl time.Duration) ([]byte, error)
	Write(key string, data []byte) error
	Path(key string) string
}

// Runner executes the joined command line.
type Runner interface {
	Run(ctx context.Context, command string) (*runner.Result, error)
}

// Deps are the collaborators of the root command. Zero fields are replaced
// with production defaults by NewRootCmdWithDeps.
type Deps struct {
	// Store holds cached output. Defaults to a FileStore in cache.DefaultDirectory().
	Store Store

	// Runner executes commands on a miss. Defaults to runner.New().
	Runner Runner

	// LookupEnv reads environment variables for configuration. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// IsTerminal decides whether usage text may be styled. Defaults to a TTY check.
	IsTerminal func(io.Writer) bool
}

func (d Deps) withDefaults() Deps {
	if d.Store == nil {
		d.Store = cache.NewFileStore(cache.DefaultDirectory())
	}
	if d.Runner == nil {
		d.Runner = runner.New()
	}
	if d.LookupEnv == nil {
		d.LookupEnv = os.LookupEnv
	}
	if d.IsTerminal == nil {
		d.IsTerminal = writerIsTerminal
	}
	return d
}

// NewRootCmd creates the kep root command wired to the real cache directory,
// the platform shell and the process environment.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithDeps(ver, Deps{})
}

// NewRootCmdWithDeps creates the root command with explicit collaborators for testability.
//
// Flag parsing is disabled: every argument after the optional duration is part
// of the wrapped command, and only a leading -h/--help is interpreted by kep.
func NewRootCmdWithDeps(ver string, deps Deps) *cobra.Command {
	d := &driver{deps: deps.withDefaults()}

	cmd := &cobra.Command{
		Use:                "kep [duration] <command...>",
		Short:              "Cache any command output",
		Version:            ver,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			d.setupLogging(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer d.cleanupLogging()
			return d.run(cmd, args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}
