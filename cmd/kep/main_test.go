package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/kep/internal/cli"
)

func TestMainComponents(t *testing.T) {
	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version)
		if root == nil {
			t.Fatal("expected root command to be non-nil")
		}
		assert.NotEmpty(t, root.Use)
		assert.True(t, root.DisableFlagParsing)
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantExitCode int
	}{
		{
			name:         "nil error returns 0",
			err:          nil,
			wantExitCode: 0,
		},
		{
			name:         "ExitError with child exit code",
			err:          &cli.ExitError{Code: 42},
			wantExitCode: 42,
		},
		{
			name:         "usage ExitError",
			err:          &cli.ExitError{Code: 1, Reason: "No command provided"},
			wantExitCode: 1,
		},
		{
			name:         "wrapped ExitError",
			err:          fmt.Errorf("outer: %w", &cli.ExitError{Code: 3}),
			wantExitCode: 3,
		},
		{
			name:         "joined ExitError",
			err:          errors.Join(errors.New("outer"), &cli.ExitError{Code: 7}),
			wantExitCode: 7,
		},
		{
			name:         "generic error falls through to 1",
			err:          errors.New("generic error"),
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantExitCode, extractExitCode(tt.err))
		})
	}
}

func TestReportError(t *testing.T) {
	t.Run("ExitError is silent", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, 5, reportError(&buf, &cli.ExitError{Code: 5, Reason: "already reported"}))
		assert.Empty(t, buf.String())
	})

	t.Run("generic error is printed", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, 1, reportError(&buf, errors.New("writing cached output: broken pipe")))
		assert.Equal(t, "Error: writing cached output: broken pipe\n", buf.String())
	})

	t.Run("nil is silent", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, 0, reportError(&buf, nil))
		assert.Empty(t, buf.String())
	})
}
