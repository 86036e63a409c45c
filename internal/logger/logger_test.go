package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter("info", "json", &buf)

	ctx := NewContext(context.Background(), Get().With("request_id", "req-1"))
	InfoContext(ctx, "hello")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	DebugContext(ctx, "hidden")
	assert.Empty(t, buf.String())
}
