package logging

import (
	"context"
	"crypto/rand"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type contextKey string

const invocationIDKey contextKey = "kep_invocation_id"

// FromContext returns the logger stored in ctx, or a disabled logger if none was stored.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// NewInvocationID returns a fresh, time-sortable identifier for one kep run.
func NewInvocationID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// ContextWithInvocationID stores id in ctx.
func ContextWithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey, id)
}

// InvocationIDFromContext returns the invocation id stored in ctx, or "".
func InvocationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(invocationIDKey).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateInvocationID returns the id already in ctx or generates a new one.
func GetOrGenerateInvocationID(ctx context.Context) string {
	if id := InvocationIDFromContext(ctx); id != "" {
		return id
	}
	return NewInvocationID()
}
