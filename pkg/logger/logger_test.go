package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestSetupWriterStdoutDefault(t *testing.T) {
	w := SetupWriter(Config{Output: ""})
	assert.NotNil(t, w)
}

func TestNewJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	l.Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestWithRunIDRoundTrip(t *testing.T) {
	ctx := WithRunID(t.Context(), "run-123")
	require.Equal(t, "run-123", RunIDFromContext(ctx))
}

func TestFromContextAnnotatesRunID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithRunID(t.Context(), "run-abc")
	FromContext(ctx, base).Info("event")
	assert.Contains(t, buf.String(), `"run_id":"run-abc"`)
}

func TestFromContextNoRunID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	FromContext(t.Context(), base).Info("event")
	assert.NotContains(t, buf.String(), "run_id")
}
