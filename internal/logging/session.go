package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

type sessionIDKey struct{}

// NewSessionID returns a fresh ULID string.
func NewSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithSessionID stores id in ctx and tags the context logger with it.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey{}, id)
	l := FromContext(ctx).With().Str("session_id", id).Logger()
	return l.WithContext(ctx)
}

// SessionIDFromContext returns the session id stored in ctx, or "".
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateSessionID returns the id already in ctx or a new one.
func GetOrGenerateSessionID(ctx context.Context) string {
	if id := SessionIDFromContext(ctx); id != "" {
		return id
	}
	return NewSessionID()
}
