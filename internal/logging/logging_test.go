package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, WarnLevel, cfg.Level)
	assert.Equal(t, os.Stderr, cfg.Output)
	assert.True(t, cfg.Pretty)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{" warn ", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"", WarnLevel},
		{"verbose", WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestInit_FiltersByLevel(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, Output: &buf})

	Debug().Msg("hidden")
	Info().Str("path", "/tmp/x").Msg("loaded")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"loaded"`)
	assert.Contains(t, out, `"path":"/tmp/x"`)
}

func TestOpenFile(t *testing.T) {
	defer Init(DefaultConfig())

	path := filepath.Join(t.TempDir(), "cmdlist.log")
	c, err := OpenFile(path, DebugLevel)
	require.NoError(t, err)

	Debug().Msg("to file")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
