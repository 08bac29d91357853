// Package logging builds the CLI's zap logger and the hooks that feed stick
// activity into it.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-drift/joystick/pkg/stick"
)

// New builds a console logger writing to stderr at level. Verbose adds
// callers and stack traces.
func New(level zapcore.Level, verbose bool) (*zap.Logger, error) {
	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       verbose,
		Encoding:          "console",
		EncoderConfig:     encoder,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !verbose,
		DisableStacktrace: !verbose,
	}
	return config.Build()
}

// Transitions returns an observer that logs every stick transition at debug level.
func Transitions(logger *zap.Logger) func(stick.Transition) {
	return func(t stick.Transition) {
		if ce := logger.Check(zapcore.DebugLevel, "stick transition"); ce != nil {
			ce.Write(
				zap.Stringer("event", t.Event.Kind),
				zap.Int64("pointer", t.Event.Pointer),
				zap.Stringer("from", t.From.Phase),
				zap.Stringer("to", t.To.Phase),
				zap.Float64("x", t.To.Thumb.X),
				zap.Float64("y", t.To.Thumb.Y),
			)
		}
	}
}
