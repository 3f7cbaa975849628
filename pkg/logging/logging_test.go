package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"DEBUG", zapcore.DebugLevel, false},
		{" warn ", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.input)
		if tc.wantErr {
			assert.Error(t, err, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"", FormatJSON, FormatConsole} {
		l, err := New(LogConfig{Level: LevelDebug, Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, l)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(LogConfig{Format: "xml"})
	assert.Error(t, err)

	_, err = New(LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = New(LogConfig{OutputPaths: []string{}})
	assert.Error(t, err)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l, err := New(LogConfig{Level: LevelInfo, Format: FormatJSON, OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("ensembledata call finished", zap.String("path", "/tt/user/info"), zap.Int("units_charged", 1))
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"path":"/tt/user/info"`)
	assert.Contains(t, out, `"units_charged":1`)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)
}

func TestNewConsole(t *testing.T) {
	assert.True(t, NewConsole(true).Core().Enabled(zapcore.DebugLevel))
	assert.False(t, NewConsole(false).Core().Enabled(zapcore.DebugLevel))
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
	l.Info("discarded")
}
