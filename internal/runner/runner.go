// Package runner executes a command line through the system shell and captures
// everything it produces.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/kep/internal/logging"
)

// ErrLaunch is returned when the shell itself could not be started.
var ErrLaunch = errors.New("failed to start shell")

// indeterminateExitCode is reported when the child exits without a status
// code, e.g. after being killed by a signal.
const indeterminateExitCode = 1

// Result is the captured outcome of one command execution.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Runner runs command strings through a shell interpreter.
type Runner struct {
	shell string
	flag  string
}

// Option configures a Runner.
type Option func(*Runner)

// WithShell overrides the interpreter and the flag that introduces the command
// string (for example "bash", "-c").
func WithShell(shell, flag string) Option {
	return func(r *Runner) {
		r.shell = shell
		r.flag = flag
	}
}

// New returns a Runner using the platform shell: "sh -c" on Unix-like systems
// and "cmd /C" on Windows.
func New(opts ...Option) *Runner {
	r := &Runner{shell: "sh", flag: "-c"}
	if runtime.GOOS == "windows" {
		r.shell, r.flag = "cmd", "/C"
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Shell returns the interpreter and flag this Runner invokes.
func (r *Runner) Shell() (string, string) {
	return r.shell, r.flag
}

// Run executes command and waits for it to finish. The child's stdin is not
// connected. A non-zero exit is reported through Result.ExitCode, not as an
// error; the returned error is non-nil only when the shell could not be run at
// all, and then it wraps ErrLaunch.
func (r *Runner) Run(ctx context.Context, command string) (*Result, error) {
	log := logging.FromContext(ctx)

	var stdout, stderr bytes.Buffer
	//nolint:gosec // Executing the user's command line is the whole point.
	cmd := exec.CommandContext(ctx, r.shell, r.flag, command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().
		Ctx(ctx).
		Str("component", "runner").
		Str("shell", r.shell).
		Str("command", command).
		Msg("executing command")

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, r.shell, err)
	}
	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	result := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: elapsed,
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		result.ExitCode = 0
	case errors.As(waitErr, &exitErr):
		result.ExitCode = exitCode(exitErr)
	default:
		// Wait failed for a reason other than the child's status (I/O copy error).
		return nil, fmt.Errorf("waiting for command: %w", waitErr)
	}

	logResult(ctx, log, result)
	return result, nil
}

// exitCode maps a process exit to the code kep should exit with.
func exitCode(err *exec.ExitError) int {
	code := err.ExitCode()
	if code < 0 {
		return indeterminateExitCode
	}
	return code
}

func logResult(ctx context.Context, log *zerolog.Logger, result *Result) {
	log.Debug().
		Ctx(ctx).
		Str("component", "runner").
		Int("exit_code", result.ExitCode).
		Int("stdout_bytes", len(result.Stdout)).
		Int("stderr_bytes", len(result.Stderr)).
		Dur("duration", result.Duration).
		Msg("command finished")
}
