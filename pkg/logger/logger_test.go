package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newBufferedLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log, err := NewWithSink(cfg, zapcore.AddSync(&buf))
	require.NoError(t, err)
	return log, &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestLogger_WritesStructuredJSON(t *testing.T) {
	log, buf := newBufferedLogger(t, DefaultConfig())

	log.Info("cube measured", "side_length", 3.0)

	entry := lastEntry(t, buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "cube measured", entry["msg"])
	assert.Equal(t, 3.0, entry["side_length"])
	assert.Contains(t, entry, "timestamp")
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufferedLogger(t, Config{Level: "warn", Format: "json"})

	log.Info("quiet")
	assert.Zero(t, buf.Len(), "info should be filtered below warn")

	log.Warn("loud")
	entry := lastEntry(t, buf)
	assert.Equal(t, "warn", entry["level"])
}

func TestLogger_WithAddsFields(t *testing.T) {
	log, buf := newBufferedLogger(t, DefaultConfig())

	log.With("component", "cube").Info("measured")

	entry := lastEntry(t, buf)
	assert.Equal(t, "cube", entry["component"])
}

func TestLogger_WithContextAddsRequestID(t *testing.T) {
	log, buf := newBufferedLogger(t, DefaultConfig())

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-7")
	log.WithContext(ctx).Info("handled")

	entry := lastEntry(t, buf)
	assert.Equal(t, "req-7", entry["request_id"])
}

func TestLogger_Named(t *testing.T) {
	log, buf := newBufferedLogger(t, DefaultConfig())

	log.Named("api").Info("up")

	entry := lastEntry(t, buf)
	assert.Equal(t, "api", entry["logger"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "shouting", Format: "json"})
	assert.Error(t, err)
}
