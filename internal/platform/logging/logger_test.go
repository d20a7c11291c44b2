package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).Named("silver").With("run_id", "r-1")

	logger.Info("table materialized", "table", "fact_passes", "rows", 3)
	logger.Debug("suppressed below level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, sonic.UnmarshalString(lines[0], &entry))
	require.Equal(t, "INFO", entry["level"])
	require.Equal(t, "silver", entry["component"])
	require.Equal(t, "table materialized", entry["msg"])
	require.Equal(t, "fact_passes", entry["table"])
	require.Equal(t, "r-1", entry["run_id"])
	require.EqualValues(t, 3, entry["rows"])
}

func TestLogger_ErrorValuesAndOddArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.WarnContext(context.Background(), "unit failed", "error", errors.New("boom"), "dangling")

	var entry map[string]any
	require.NoError(t, sonic.UnmarshalString(strings.TrimSpace(buf.String()), &entry))
	require.Equal(t, "boom", entry["error"])
	require.Contains(t, entry, "dangling")
	require.NotContains(t, entry, "trace_id")
}

func TestDefaultLogger(t *testing.T) {
	var nilLogger *Logger
	require.NotPanics(t, func() { nilLogger.Info("no-op") })

	custom := NewNop()
	SetDefault(custom)
	t.Cleanup(func() { SetDefault(nil) })
	require.Same(t, custom, Default())
	require.Same(t, custom, OrDefault(nil))
}
