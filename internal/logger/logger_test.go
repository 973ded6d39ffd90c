package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Run("Should accept known levels case-insensitively", func(t *testing.T) {
		l, ok := ParseLevel(" WARN ")
		require.True(t, ok)
		assert.Equal(t, WarnLevel, l)
	})

	t.Run("Should fall back to info for unknown names", func(t *testing.T) {
		l, ok := ParseLevel("verbose")
		assert.False(t, ok)
		assert.Equal(t, InfoLevel, l)
	})
}

func TestNew(t *testing.T) {
	t.Run("Should filter below the configured level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Config{Level: WarnLevel, Output: buf})

		l.Info("hidden")
		l.Warn("shown", "kind", "date")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "kind=date")
	})

	t.Run("Should emit JSON when requested", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := New(&Config{Level: DebugLevel, Output: buf, JSON: true})

		l.Debug("checked", "count", 2)

		assert.Contains(t, buf.String(), `"msg":"checked"`)
		assert.Contains(t, buf.String(), `"count":2`)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := New(&Config{Level: ErrorLevel, Output: &bytes.Buffer{}})
		ctx := WithLogger(context.Background(), expected)

		assert.Equal(t, expected, FromContext(ctx))
	})

	t.Run("Should return default logger when none is stored", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("Should return default logger for a nil context", func(t *testing.T) {
		var ctx context.Context
		require.NotNil(t, FromContext(ctx))
	})
}
