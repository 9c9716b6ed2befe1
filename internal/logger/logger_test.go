package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"err", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		level, ok := ParseLevel(tt.name)
		require.Equal(t, tt.level, level, tt.name)
		require.Equal(t, tt.ok, ok, tt.name)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{LogLevel: "warn"}, &buf)

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	require.NotContains(t, out, "hidden 1")
	require.Contains(t, out, "shown 2")
	require.Contains(t, out, "logger_test.go", "source should point at the caller")
}

func TestTagFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{LogLevel: "debug", DisabledTags: []string{"Layout"}}, &buf)

	DebugTagf("layout", "resized")
	DebugTagf("mode", "switched")
	Debugf("untagged")

	out := buf.String()
	require.NotContains(t, out, "resized")
	require.Contains(t, out, "switched")
	require.Contains(t, out, "untagged")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{LogLevel: "debug", EnabledTags: []string{"mode"}}, &buf)

	Debugf("untagged")
	InfoTagf("mode", "kept")
	WarnTagf("layout", "dropped")

	out := buf.String()
	require.NotContains(t, out, "untagged")
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "kept")
}

func TestPackageAndFileFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &buf)
	Infof("from logger package")
	require.Empty(t, buf.String())

	buf.Reset()
	InitWithWriter(Config{LogLevel: "debug", EnabledFiles: []string{"other.go"}}, &buf)
	Infof("from test file")
	require.Empty(t, buf.String())

	buf.Reset()
	InitWithWriter(Config{LogLevel: "debug", EnabledFiles: []string{"logger_test.go"}}, &buf)
	Infof("from test file")
	require.Contains(t, buf.String(), "from test file")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "modal.log")
	closer, err := Init(Config{LogLevel: "info", LogFilePath: path})
	require.NoError(t, err)

	Infof("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")

	InitWithWriter(NewConfig(), nil)
}
