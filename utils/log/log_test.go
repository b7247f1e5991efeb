package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
	return NewWithHandler(h)
}

func TestLoggerModule(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)

	l.Module("ntru").With("n", 7).Debug("keygen")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	require.Equal(t, "ntru", entry["module"])
	require.Equal(t, "keygen", entry["msg"])
	require.Equal(t, float64(7), entry["n"])
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	require.Zero(t, buf.Len())
	require.False(t, l.Enabled(slog.LevelDebug))

	l.Warn("shown")
	require.NotZero(t, buf.Len())
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	SetDefault(l)
	require.Same(t, l, Default())

	SetDefault(nil)
	require.Same(t, l, Default())
}
