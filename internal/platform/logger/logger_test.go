package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Info("dropped")
	l.Warn("kept", slog.String("k", "v"))

	entries := parseLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, "v", entries[0]["k"])
}

func TestNewWarnsOnInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "chatty")

	entries := parseLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "chatty", entries[0]["configured_level"])
}

func TestSetupRejectsInvalidLevel(t *testing.T) {
	l, err := Setup(config.ServerConfig{LogLevel: "chatty"})
	assert.Error(t, err)
	assert.Nil(t, l)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	stored := New(&buf, "debug")
	fallback := New(&bytes.Buffer{}, "debug")

	ctx := WithLogger(context.Background(), stored)

	assert.Same(t, stored, FromContext(ctx))
	assert.Same(t, stored, FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
