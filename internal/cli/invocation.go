package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rshade/kep/internal/cache"
	"github.com/rshade/kep/internal/duration"
)

// noCommandMessage is printed when a duration is given without a command.
const noCommandMessage = "No command provided"

// ErrNoCommand is returned by ParseInvocation when no command tokens remain.
var ErrNoCommand = errors.New("no command provided")

// Invocation is the parsed form of kep's arguments: the TTL to apply and the
// command tokens that follow it. Tokens is a private copy and is never modified.
type Invocation struct {
	// TTL is the maximum age of a cache entry that may be replayed.
	TTL time.Duration

	// ExplicitTTL is true when the first argument was a duration token.
	ExplicitTTL bool

	// Tokens are the command words, in order.
	Tokens []string
}

// Command joins the tokens with single spaces, the string handed to the shell.
func (i Invocation) Command() string {
	return strings.Join(i.Tokens, " ")
}

// Key returns the cache key for this invocation's tokens.
func (i Invocation) Key() string {
	return cache.Key(i.Tokens)
}

// IsHelpRequest reports whether kep should print usage: no arguments at all,
// or -h/--help as the first argument. Help flags later in the line belong to
// the wrapped command.
func IsHelpRequest(args []string) bool {
	if len(args) == 0 {
		return true
	}
	return args[0] == "-h" || args[0] == "--help"
}

// ParseInvocation splits args into an optional leading duration and the
// command tokens. A first token that is not a duration is kept as the first
// command word and the TTL defaults to duration.DefaultTTL.
//
// Returns ErrNoCommand when nothing is left after the duration, and an error
// wrapping duration.ErrOutOfRange for durations too large to represent.
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, ErrNoCommand
	}

	inv := Invocation{TTL: duration.DefaultTTL}
	rest := args

	ttl, err := duration.Parse(args[0])
	switch {
	case err == nil:
		inv.TTL = ttl
		inv.ExplicitTTL = true
		rest = args[1:]
	case errors.Is(err, duration.ErrNotDuration):
		// The first token is part of the command.
	default:
		return Invocation{}, fmt.Errorf("invalid duration: %w", err)
	}

	if len(rest) == 0 {
		return Invocation{}, ErrNoCommand
	}

	inv.Tokens = slices.Clone(rest)
	return inv, nil
}
