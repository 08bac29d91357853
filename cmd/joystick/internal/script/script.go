// Package script reads gesture scripts: YAML files that describe a sequence
// of pointer events to replay against a stick.
//
//	version: v1
//	size: {width: 170, height: 170}
//	steps:
//	  - {phase: down, x: 85, y: 85}
//	  - {phase: move, x: 85, y: 200}
//	  - {phase: up}
package script

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/joystick/pkg/errors"
	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
)

// SupportedMajor is the only script major version this build understands.
const SupportedMajor = "v1"

// DefaultPointer is the pointer ID used by steps that do not name one.
const DefaultPointer = 1

// Script is a parsed gesture script.
type Script struct {
	Version string `yaml:"version"`
	Size    Size   `yaml:"size,omitempty"`
	Steps   []Step `yaml:"steps"`
}

// Size is the optional surface size of a script. Zero means the caller decides.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Step is one pointer sample. X and Y may be omitted for up and cancel, in
// which case the last position of the pointer is reused.
type Step struct {
	Phase   string   `yaml:"phase"`
	X       *float64 `yaml:"x,omitempty"`
	Y       *float64 `yaml:"y,omitempty"`
	Pointer int64    `yaml:"pointer,omitempty"`
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a script. source names the input in errors.
func Parse(data []byte, source string) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if stderrors.Is(err, io.EOF) {
			err = fmt.Errorf("empty script")
		}
		return nil, configError("script.Parse", source, err)
	}
	if err := s.Validate(); err != nil {
		return nil, configError("script.Validate", source, err)
	}
	return &s, nil
}

func configError(op, source string, err error) error {
	return &errors.JoystickError{Op: op, Kind: errors.KindConfig, Source: source, Err: err}
}

// CanonicalVersion returns the version in canonical semver form, accepting
// a missing "v" prefix.
func (s *Script) CanonicalVersion() string {
	v := strings.TrimSpace(s.Version)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// Validate checks the version, the size, and that every step resolves to an event.
func (s *Script) Validate() error {
	v := s.CanonicalVersion()
	if v == "" {
		return fmt.Errorf("invalid version %q: want a semantic version such as %s", s.Version, SupportedMajor)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported version %s: this build reads %s scripts", v, SupportedMajor)
	}
	if s.Size.Width < 0 || s.Size.Height < 0 {
		return fmt.Errorf("size must not be negative, got %vx%v", s.Size.Width, s.Size.Height)
	}
	if (s.Size.Width == 0) != (s.Size.Height == 0) {
		return fmt.Errorf("size needs both width and height, got %vx%v", s.Size.Width, s.Size.Height)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("no steps")
	}
	_, err := s.Events()
	return err
}

// HasSize reports whether the script fixes the surface size.
func (s *Script) HasSize() bool {
	return s.Size.Width > 0 && s.Size.Height > 0
}

// SurfaceSize returns the script size as a graphics.Size.
func (s *Script) SurfaceSize() graphics.Size {
	return graphics.Size{Width: s.Size.Width, Height: s.Size.Height}
}

// Events resolves the steps into pointer events in surface coordinates.
func (s *Script) Events() ([]gestures.PointerEvent, error) {
	last := make(map[int64]graphics.Offset)
	events := make([]gestures.PointerEvent, 0, len(s.Steps))
	for i, step := range s.Steps {
		phase, err := gestures.ParsePointerPhase(strings.ToLower(strings.TrimSpace(step.Phase)))
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		pointer := step.Pointer
		if pointer == 0 {
			pointer = DefaultPointer
		}

		var pos graphics.Offset
		switch {
		case step.X != nil && step.Y != nil:
			pos = graphics.Offset{X: *step.X, Y: *step.Y}
		case step.X != nil || step.Y != nil:
			return nil, fmt.Errorf("step %d: x and y must be given together", i+1)
		case phase == gestures.PointerPhaseDown || phase == gestures.PointerPhaseMove:
			return nil, fmt.Errorf("step %d: %s needs x and y", i+1, phase)
		default:
			prev, ok := last[pointer]
			if !ok {
				return nil, fmt.Errorf("step %d: %s for pointer %d has no previous position", i+1, phase, pointer)
			}
			pos = prev
		}
		last[pointer] = pos

		events = append(events, gestures.PointerEvent{
			PointerID: pointer,
			Position:  pos,
			Phase:     phase,
		})
	}
	return events, nil
}
