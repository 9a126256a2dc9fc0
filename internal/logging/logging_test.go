package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json output respects level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, "warn", FormatJSON, false)

		l.Info().Msg("hidden")
		l.Warn().Str("k", "v").Msg("shown")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["message"])
		assert.Equal(t, "v", entry["k"])
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("invalid level defaults to info", func(t *testing.T) {
		l := NewLogger(&bytes.Buffer{}, "loud", FormatJSON, false)
		assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
	})

	t.Run("console format is human readable", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, "debug", FormatConsole, false)
		l.Debug().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
		assert.NotContains(t, buf.String(), `"message"`)
	})
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "eco.log")
		res := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
		t.Cleanup(func() { _ = res.Close() })

		assert.True(t, res.UsingFile)
		assert.Equal(t, path, res.FilePath)
		assert.False(t, res.FallbackUsed)
	})

	t.Run("unopenable file falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "eco.log")
		res := NewLoggerWithPath(Config{Output: OutputFile, File: path})

		assert.False(t, res.UsingFile)
		assert.True(t, res.FallbackUsed)
		assert.NotEmpty(t, res.FallbackReason)
		assert.NoError(t, res.Close())
	})

	t.Run("missing path falls back", func(t *testing.T) {
		res := NewLoggerWithPath(Config{Output: OutputFile})
		assert.True(t, res.FallbackUsed)
	})
}

func TestSessionID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "info", FormatJSON, false)
	ctx := l.WithContext(context.Background())

	id := NewSessionID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx = ContextWithSessionID(ctx, id)
	assert.Equal(t, id, SessionIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateSessionID(ctx))

	FromContext(ctx).Info().Msg("tagged")
	assert.Contains(t, buf.String(), id)

	assert.Empty(t, SessionIDFromContext(context.Background()))
	assert.NotEmpty(t, GetOrGenerateSessionID(context.Background()))
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(NewLogger(&buf, "info", FormatJSON, false), "session")
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"session"`)
}
