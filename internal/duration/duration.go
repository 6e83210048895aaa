// Package duration parses the optional TTL token that may lead a kep invocation.
//
// Only the compact form accepted on the command line is recognised: one or more
// decimal digits followed by a single unit character (s, m, h or d). Anything
// else is reported as ErrNotDuration so the caller can treat the token as the
// first word of the wrapped command instead.
package duration

import (
	"errors"
	"fmt"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// DefaultTTL is used when the invocation does not start with a duration token.
const DefaultTTL = time.Hour

var (
	// ErrNotDuration is returned for tokens that are not of the form <digits><unit>.
	ErrNotDuration = errors.New("not a duration")

	// ErrOutOfRange is returned when a well-formed token describes a span
	// larger than time.Duration can hold.
	ErrOutOfRange = errors.New("duration out of range")
)

// units lists the accepted single-character suffixes.
//
//nolint:gochecknoglobals // Lookup table.
var units = map[byte]bool{
	's': true,
	'm': true,
	'h': true,
	'd': true,
}

// Parse converts a token such as "30m" or "7d" into a time.Duration.
//
// Tokens that do not match <digits><unit> return an error wrapping
// ErrNotDuration. Well-formed tokens whose value overflows return an error
// wrapping ErrOutOfRange.
func Parse(token string) (time.Duration, error) {
	if !isDurationShape(token) {
		return 0, fmt.Errorf("%w: %q", ErrNotDuration, token)
	}

	d, err := str2duration.ParseDuration(token)
	if err != nil {
		// The shape was already checked, so the only way to fail here is overflow.
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, token)
	}
	return d, nil
}

// Format renders d for log output, e.g. "1h", "30m" or "1d12h". Whole weeks
// are shown with a "w" unit, which Parse itself does not accept.
func Format(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	return str2duration.String(d)
}

func isDurationShape(token string) bool {
	if len(token) < 2 {
		return false
	}
	if !units[token[len(token)-1]] {
		return false
	}
	for i := 0; i < len(token)-1; i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}
