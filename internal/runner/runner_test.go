package runner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestNew_DefaultShell(t *testing.T) {
	shell, flag := New().Shell()
	if runtime.GOOS == "windows" {
		assert.Equal(t, "cmd", shell)
		assert.Equal(t, "/C", flag)
		return
	}
	assert.Equal(t, "sh", shell)
	assert.Equal(t, "-c", flag)
}

func TestRun(t *testing.T) {
	skipWithoutSh(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		command    string
		wantStdout string
		wantStderr string
		wantCode   int
	}{
		{
			name:       "stdout only",
			command:    "echo hello",
			wantStdout: "hello\n",
		},
		{
			name:       "separate streams",
			command:    "echo out; echo err >&2",
			wantStdout: "out\n",
			wantStderr: "err\n",
		},
		{
			name:     "exit code is preserved",
			command:  "exit 3",
			wantCode: 3,
		},
		{
			name:       "output and failure",
			command:    "printf partial; exit 42",
			wantStdout: "partial",
			wantCode:   42,
		},
		{
			name:       "shell features",
			command:    "printf 'a\\nb\\nc\\n' | wc -l | tr -d ' '",
			wantStdout: "3\n",
		},
		{
			name:     "signal termination",
			command:  "kill -9 $$",
			wantCode: 1,
		},
		{
			name:     "command not found",
			command:  "kep-definitely-not-a-command",
			wantCode: 127,
		},
		{
			name:       "stdin is not connected",
			command:    "cat; echo done",
			wantStdout: "done\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().Run(ctx, tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStdout, string(result.Stdout))
			if tt.wantStderr != "" {
				assert.Equal(t, tt.wantStderr, string(result.Stderr))
			}
			assert.Equal(t, tt.wantCode, result.ExitCode)
			assert.GreaterOrEqual(t, result.Duration.Nanoseconds(), int64(0))
		})
	}
}

func TestRun_SideEffects(t *testing.T) {
	skipWithoutSh(t)

	marker := filepath.Join(t.TempDir(), "marker")
	_, err := New().Run(context.Background(), "echo ran >> "+marker)
	require.NoError(t, err)

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "ran\n", string(data))
}

func TestRun_LaunchFailure(t *testing.T) {
	r := New(WithShell(filepath.Join(t.TempDir(), "no-such-shell"), "-c"))

	result, err := r.Run(context.Background(), "echo hello")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrLaunch)
	assert.Contains(t, err.Error(), "no-such-shell")
}

func TestWithShell(t *testing.T) {
	shell, flag := New(WithShell("bash", "-c")).Shell()
	assert.Equal(t, "bash", shell)
	assert.Equal(t, "-c", flag)
}
