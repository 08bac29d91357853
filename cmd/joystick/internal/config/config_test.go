package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/go-drift/joystick/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolve_MissingFileUsesDefaults(t *testing.T) {
	resolved, err := Resolve(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)

	assert.Empty(t, resolved.Path)
	assert.Equal(t, 170.0, resolved.Size)
	assert.Equal(t, 1.0, resolved.Density)
	assert.Equal(t, zapcore.InfoLevel, resolved.LogLevel)
	assert.False(t, resolved.Verbose)
}

func TestResolve_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
widget:
  size: 240
  density: 2
log:
  level: debug
  verbose: true
`)
	resolved, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, path, resolved.Path)
	assert.Equal(t, 240.0, resolved.Size)
	assert.Equal(t, 2.0, resolved.Density)
	assert.Equal(t, zapcore.DebugLevel, resolved.LogLevel)
	assert.True(t, resolved.Verbose)
}

func TestResolve_SizeDefaultsToScaledPreferredSize(t *testing.T) {
	path := writeConfig(t, "widget:\n  density: 1.5\n")
	resolved, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 255.0, resolved.Size)
}

func TestResolve_FractionalDensityTruncatesSize(t *testing.T) {
	resolved, err := Resolve(writeConfig(t, "widget:\n  density: 1.33\n"))
	require.NoError(t, err)
	assert.Equal(t, 226.0, resolved.Size)
	assert.Equal(t, 1.33, resolved.Density)
}

func TestResolve_EmptyFile(t *testing.T) {
	resolved, err := Resolve(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 170.0, resolved.Size)
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative density", "widget:\n  density: -1\n"},
		{"negative size", "widget:\n  size: -10\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"unknown key", "widget:\n  colour: red\n"},
		{"not yaml", "widget: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.content))
			require.Error(t, err)

			var jerr *errors.JoystickError
			require.True(t, stderrors.As(err, &jerr), "expected a JoystickError, got %T", err)
			assert.Equal(t, errors.KindConfig, jerr.Kind)
			assert.NotEmpty(t, jerr.Source)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}
