package cli

import (
	"fmt"
)

// ExitError carries the process exit code out of the command. The driver has
// already written any user-facing message, so Reason is for logs and tests.
type ExitError struct {
	Code   int
	Reason string
}

func (e *ExitError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("exit status %d", e.Code)
}
