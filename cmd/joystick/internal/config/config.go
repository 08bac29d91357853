// Package config loads the optional joystick.yaml file and resolves the
// settings the CLI runs with.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/joystick/pkg/errors"
	"github.com/go-drift/joystick/pkg/widgets"
)

// FileName is the config file looked up in the working directory.
const FileName = "joystick.yaml"

// Config represents the optional joystick.yaml configuration.
type Config struct {
	Widget WidgetConfig `yaml:"widget"`
	Log    LogConfig    `yaml:"log"`
}

// WidgetConfig contains the stick settings.
type WidgetConfig struct {
	// Size is the side of the square surface in pixels. Zero means the
	// preferred stick size for the density.
	Size    float64 `yaml:"size,omitempty"`
	Density float64 `yaml:"density,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string `yaml:"level,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values came from, or empty if none was read.
	Path     string
	Size     float64
	Density  float64
	LogLevel zapcore.Level
	Verbose  bool
}

// LoadOptional reads the config at path if present. A missing file yields an
// empty Config; unknown keys are rejected.
func LoadOptional(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, &errors.JoystickError{
			Op:     "config.LoadOptional",
			Kind:   errors.KindConfig,
			Source: path,
			Err:    err,
		}
	}
	return &cfg, nil
}

// Resolve loads the config at path (if present) and resolves defaults.
func Resolve(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, &errors.JoystickError{
			Op:     "config.Resolve",
			Kind:   errors.KindConfig,
			Source: path,
			Err:    err,
		}
	}
	if _, statErr := os.Stat(path); statErr == nil {
		resolved.Path = path
	}
	return resolved, nil
}

// Resolve validates cfg and fills in defaults.
func (c *Config) Resolve() (*Resolved, error) {
	density := c.Widget.Density
	switch {
	case density == 0:
		density = 1
	case density < 0:
		return nil, fmt.Errorf("widget.density must be positive, got %v", density)
	}

	size := c.Widget.Size
	switch {
	case size == 0:
		size = widgets.PreferredSize(density)
	case size < 0:
		return nil, fmt.Errorf("widget.size must be positive, got %v", size)
	}

	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Size:     size,
		Density:  density,
		LogLevel: level,
		Verbose:  c.Log.Verbose,
	}, nil
}

// ParseLevel parses a zap level name. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
