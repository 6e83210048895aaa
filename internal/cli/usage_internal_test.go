package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderUsage(t *testing.T) {
	plain := renderUsage(false)
	assert.Equal(t, usageText+"\n", plain)
	assert.True(t, strings.HasPrefix(plain, "Cache any command output.\n\nUsage: kep [duration] <command...>\n"))

	styled := renderUsage(true)
	assert.Contains(t, styled, "Cache any command output.")
	assert.True(t, strings.HasSuffix(styled, "Duration suffixes: s (seconds), m (minutes), h (hours), d (days)\n"))
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printUsage(&buf, false))
	assert.Equal(t, usageText+"\n", buf.String())
}

func TestWriterIsTerminal(t *testing.T) {
	assert.False(t, writerIsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, writerIsTerminal(f))
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "exit status 3", (&ExitError{Code: 3}).Error())
	assert.Equal(t, "No command provided", (&ExitError{Code: 1, Reason: "No command provided"}).Error())
}
