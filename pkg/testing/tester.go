package testing

import (
	"testing"

	"github.com/go-drift/joystick/pkg/engine"
	"github.com/go-drift/joystick/pkg/errors"
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// WidgetTester drives a render tree through an engine.Surface with a
// recording canvas instead of a real display.
type WidgetTester struct {
	surface   *engine.Surface
	recorder  *graphics.PictureRecorder
	lastFrame *graphics.DisplayList
	pointers  map[int64]graphics.Offset
	nextID    int64

	prevHandler errors.ErrorHandler
	reported    []*errors.JoystickError
	panics      []*errors.PanicError
}

// NewWidgetTester creates a tester with the default surface size. It installs
// an error handler that records reports instead of logging them.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		surface:  engine.NewSurface(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
		recorder: &graphics.PictureRecorder{},
		pointers: make(map[int64]graphics.Offset),
	}
	t.prevHandler = errors.DefaultHandler
	errors.SetHandler(t)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the previous error handler.
func (t *WidgetTester) Cleanup() {
	t.surface.Mount(nil)
	errors.SetHandler(t.prevHandler)
}

// SetSize sets the logical surface size. A mounted tree is laid out again
// on the next Pump.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.surface.SetSize(size)
}

// Size returns the logical surface size.
func (t *WidgetTester) Size() graphics.Size {
	return t.surface.Size()
}

// Surface returns the surface the tester drives.
func (t *WidgetTester) Surface() *engine.Surface {
	return t.surface
}

// PumpWidget mounts (or remounts) root and runs one full frame.
func (t *WidgetTester) PumpWidget(root layout.RenderBox) error {
	clear(t.pointers)
	t.surface.Mount(root)
	return t.Pump()
}

// Pump runs a single frame: layout if needed, then paint if needed. The
// display list of the frame is kept for DisplayOps.
func (t *WidgetTester) Pump() error {
	canvas := t.recorder.BeginRecording(t.surface.Size())
	painted := t.surface.Frame(canvas)
	dl := t.recorder.EndRecording()
	if painted {
		t.lastFrame = dl
	}
	return nil
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.surface.Root()
}

// LastFrame returns the display list of the last painted frame, or nil.
func (t *WidgetTester) LastFrame() *graphics.DisplayList {
	return t.lastFrame
}

// DisplayOps returns the serialized operations of the last painted frame.
func (t *WidgetTester) DisplayOps() []DisplayOp {
	if t.lastFrame == nil {
		return nil
	}
	return serializeDisplayList(t.lastFrame)
}

// ReportedErrors returns the errors reported through pkg/errors since the
// tester was created.
func (t *WidgetTester) ReportedErrors() []*errors.JoystickError {
	return t.reported
}

// ReportedPanics returns the panics recovered through pkg/errors since the
// tester was created.
func (t *WidgetTester) ReportedPanics() []*errors.PanicError {
	return t.panics
}

// HandleError implements errors.ErrorHandler.
func (t *WidgetTester) HandleError(err *errors.JoystickError) {
	t.reported = append(t.reported, err)
}

// HandlePanic implements errors.ErrorHandler.
func (t *WidgetTester) HandlePanic(err *errors.PanicError) {
	t.panics = append(t.panics, err)
}
