package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLoggerFields(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelDebug)

	l.With(String("session", "abc")).Info(context.Background(), "connected",
		String("engine", "sqlite"),
		Int("attempt", 1),
		Int64("rows", 42),
		Duration("elapsed", time.Second),
		Error(errors.New("none")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "connected", entry["msg"])
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, "sqlite", entry["engine"])
	assert.EqualValues(t, 1, entry["attempt"])
	assert.EqualValues(t, 42, entry["rows"])
	assert.Equal(t, "none", entry["error"])
}

func TestSlogLoggerLevels(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelWarn)
	ctx := context.Background()

	l.Debug(ctx, "debug")
	l.Info(ctx, "info")
	l.Warn(ctx, "warn")
	l.Error(ctx, "error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"warn"`)
	assert.Contains(t, lines[1], `"msg":"error"`)
}

func TestNoop(t *testing.T) {
	l := Noop().With(String("k", "v"))
	assert.NotPanics(t, func() {
		l.Error(context.Background(), "dropped", Any("x", 1))
	})
}
