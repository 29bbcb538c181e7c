package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestJSONOutputWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "debug", Format: "json"}, &buf).With("session_id", "abc")

	log.Debug("visit recorded", "url", "a.com")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visit recorded", rec["msg"])
	assert.Equal(t, "abc", rec["session_id"])
	assert.Equal(t, "a.com", rec["url"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "warn"}, &buf)

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bhist.log")
	log, err := New(Config{Output: path})
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestCloseLeavesStandardStreamsOpen(t *testing.T) {
	log, err := New(Config{Output: "stderr"})
	require.NoError(t, err)
	assert.NoError(t, log.Close())
	assert.NoError(t, Noop().Close())

	_, err = os.Stderr.Stat()
	assert.NoError(t, err)
}

func TestNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Noop().With("k", "v").Error("ignored")
	})
}
