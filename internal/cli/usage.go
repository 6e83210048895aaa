package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const usageText = `Cache any command output.

Usage: kep [duration] <command...>

Examples:
  kep curl google.com      # cached for 1h (default)
  kep 7d curl google.com   # cached for 7 days
  kep 30m echo hello       # cached for 30 minutes

Duration suffixes: s (seconds), m (minutes), h (hours), d (days)`

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// writerIsTerminal reports whether w is an *os.File attached to a terminal.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// renderUsage returns the usage text. When styled is true the title line is
// emphasised; otherwise the text is plain so it can be piped or compared.
func renderUsage(styled bool) string {
	if !styled {
		return usageText + "\n"
	}

	title, rest, _ := strings.Cut(usageText, "\n")
	titleStyle := lipgloss.NewStyle().Bold(true)
	return titleStyle.Render(title) + "\n" + rest + "\n"
}

func printUsage(w io.Writer, styled bool) error {
	_, err := io.WriteString(w, renderUsage(styled))
	return err
}
