package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger swaps GlobalLogger for one writing JSON into a buffer.
// RepoLoggers must be constructed after the swap.
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := GlobalLogger
	GlobalLogger = &Logger{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}
	t.Cleanup(func() { GlobalLogger = prev })
	return &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestRepoLoggerLogRead(t *testing.T) {
	buf := captureLogger(t)
	l := NewRepoLogger("friendships")

	ctx := WithCorrelationID(context.Background(), "corr-123")
	l.LogRead(ctx, map[string]interface{}{"count": 2})

	entry := decodeEntry(t, buf)
	assert.Equal(t, "repository read", entry["msg"])
	assert.Equal(t, "friendships", entry["collection"])
	assert.Equal(t, "read", entry["operation"])
	assert.Equal(t, "corr-123", entry["correlation_id"])
	assert.EqualValues(t, 2, entry["count"])
}

func TestRepoLoggerCorrelationIDDisabled(t *testing.T) {
	buf := captureLogger(t)
	l := NewRepoLogger("friendships")

	Config.EnableCorrelationID = false
	t.Cleanup(func() { Config.EnableCorrelationID = true })

	ctx := WithCorrelationID(context.Background(), "corr-123")
	l.LogRead(ctx, nil)
	entry := decodeEntry(t, buf)
	assert.NotContains(t, entry, "correlation_id")

	buf.Reset()
	l.LogError(ctx, errors.New("boom"), "read")
	entry = decodeEntry(t, buf)
	assert.NotContains(t, entry, "correlation_id")
	assert.Equal(t, "boom", entry["error"])
}

func TestRepoLoggerDisabled(t *testing.T) {
	buf := captureLogger(t)
	l := NewRepoLogger("friendships")

	Config.EnableRepoLogging = false
	t.Cleanup(func() { Config.EnableRepoLogging = true })

	l.LogRead(context.Background(), map[string]interface{}{"count": 1})
	l.LogError(context.Background(), errors.New("boom"), "read")
	assert.Zero(t, buf.Len())
}

func TestExtractCorrelationIDMissing(t *testing.T) {
	assert.Empty(t, ExtractCorrelationID(context.Background()))
}
