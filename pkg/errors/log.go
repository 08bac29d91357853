package errors

import (
	"go.uber.org/zap"
)

// LogHandler is an ErrorHandler that writes to a zap logger.
// A zero LogHandler logs to stderr with zap's development defaults.
type LogHandler struct {
	// Logger receives the entries. Nil means a lazily built stderr logger.
	Logger *zap.Logger
	// Verbose adds stack traces to entries.
	Verbose bool
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger == nil {
		l, err := zap.NewDevelopment(zap.WithCaller(false))
		if err != nil {
			l = zap.NewNop()
		}
		h.Logger = l
	}
	return h.Logger
}

// HandleError logs a JoystickError at error level.
func (h *LogHandler) HandleError(err *JoystickError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Source != "" {
		fields = append(fields, zap.String("source", err.Source))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("joystick error", fields...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("joystick panic", fields...)
}
