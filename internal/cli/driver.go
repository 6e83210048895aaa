package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/kep/internal/duration"
	"github.com/rshade/kep/internal/logging"
)

// driver runs one kep invocation:
//
//	ParseArgs -> CacheLookup -> hit: Emit cached stdout
//	                         -> miss: Execute -> CacheWrite -> Emit -> exit with child status
type driver struct {
	deps      Deps
	logResult *logging.LogPathResult
}

func (d *driver) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	log := logging.ComponentLogger(*logging.FromContext(ctx), "cli")

	if IsHelpRequest(args) {
		return printUsage(stdout, d.deps.IsTerminal(stdout))
	}

	inv, err := ParseInvocation(args)
	if err != nil {
		return usageError(stderr, err)
	}

	key := inv.Key()
	log.Debug().
		Str("key", key).
		Str("ttl", duration.Format(inv.TTL)).
		Bool("explicit_ttl", inv.ExplicitTTL).
		Str("path", d.deps.Store.Path(key)).
		Msg("cache lookup")

	cached, readErr := d.deps.Store.Read(key, inv.TTL)
	if readErr == nil {
		log.Debug().Str("key", key).Int("bytes", len(cached)).Msg("cache hit")
		if _, err = stdout.Write(cached); err != nil {
			return fmt.Errorf("writing cached output: %w", err)
		}
		return nil
	}
	log.Debug().Str("key", key).Err(readErr).Msg("cache miss")

	result, err := d.deps.Runner.Run(ctx, inv.Command())
	if err != nil {
		log.Debug().Err(err).Str("command", inv.Command()).Msg("command could not be executed")
		_, _ = fmt.Fprintf(stderr, "kep: %v\n", err)
		return &ExitError{Code: 1, Reason: err.Error()}
	}

	// Caching is best-effort: a failed write never affects the relayed output.
	if writeErr := d.deps.Store.Write(key, result.Stdout); writeErr != nil {
		log.Debug().Str("key", key).Err(writeErr).Msg("cache write failed")
	}

	if err = relay(stdout, stderr, result.Stdout, result.Stderr); err != nil {
		return err
	}

	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// usageError reports a problem with kep's own arguments and exits with code 1.
func usageError(stderr io.Writer, err error) error {
	msg := noCommandMessage
	if !errors.Is(err, ErrNoCommand) {
		msg = err.Error()
	}
	_, _ = fmt.Fprintln(stderr, msg)
	return &ExitError{Code: 1, Reason: msg}
}

func relay(stdout, stderr io.Writer, out, errOut []byte) error {
	if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("writing command output: %w", err)
	}
	if _, err := stderr.Write(errOut); err != nil {
		return fmt.Errorf("writing command error output: %w", err)
	}
	return nil
}
