package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.input), "input: %q", tt.input)
	}
}

func TestNew_CreatesFileWithRestrictivePermissions(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "sub", "psel.log")

	l, err := New(logPath, LevelDebug)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_RespectsMinLevel(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "psel.log")

	l, err := New(logPath, LevelWarn)
	require.NoError(t, err)

	l.Debug("invisible debug")
	l.Info("invisible info")
	l.Warn("visible warning")
	l.Error("visible error")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	content := string(data)
	require.NotContains(t, content, "invisible debug")
	require.NotContains(t, content, "invisible info")
	require.Contains(t, content, "visible warning")
	require.Contains(t, content, "visible error")
}

func TestLogger_FormatsLevelAndMessage(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "psel.log")

	l, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	l.Info("selected %s from %d candidates", "alice", 3)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	require.Contains(t, line, "INFO: selected alice from 3 candidates")
}

func TestNilLogger_IsSafe(t *testing.T) {
	var l *Logger
	l.Debug("no panic")
	l.Error("no panic")
	require.NoError(t, l.Close())
}

func TestNopLogger_DoesNothing(t *testing.T) {
	var l NopLogger
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	require.NoError(t, l.Close())
}
