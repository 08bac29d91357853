// Package host wires a stick into a surface for the CLI: it owns the render
// tree, dispatches pointer events, and rasterizes frames.
package host

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/go-drift/joystick/pkg/engine"
	"github.com/go-drift/joystick/pkg/errors"
	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/stick"
	"github.com/go-drift/joystick/pkg/widgets"
)

// Options configures a Host.
type Options struct {
	Size         graphics.Size
	Density      float64
	Background   graphics.Color
	OnChanged    func(stick.Direction)
	OnTransition func(stick.Transition)
}

// Host is a surface with a single centered stick.
type Host struct {
	surface *engine.Surface
	config  widgets.Joystick
	stick   *widgets.RenderJoystick
	canvas  *graphics.RasterCanvas
}

// New builds the render tree and lays it out.
func New(opts Options) *Host {
	h := &Host{
		surface: engine.NewSurface(opts.Size),
		config: widgets.Joystick{
			Density:      opts.Density,
			OnChanged:    opts.OnChanged,
			OnTransition: opts.OnTransition,
		},
	}
	if opts.Background != 0 {
		h.surface.Background = opts.Background
	}
	h.stick = h.config.CreateRenderObject()
	h.surface.Mount(widgets.Centered(h.stick).CreateRenderObject())
	h.canvas = graphics.NewRasterCanvas(opts.Size)
	h.surface.Frame(h.canvas)
	return h
}

// Stick returns the stick render object.
func (h *Host) Stick() *widgets.RenderJoystick {
	return h.stick
}

// Surface returns the hosting surface.
func (h *Host) Surface() *engine.Surface {
	return h.surface
}

// Dispatch routes ev through the surface and reports whether the stick saw it.
func (h *Host) Dispatch(ev gestures.PointerEvent) bool {
	return h.surface.DispatchPointer(ev)
}

// Resize changes the surface size and the stick density.
func (h *Host) Resize(size graphics.Size, density float64) {
	h.config.Density = density
	h.config.UpdateRenderObject(h.stick)
	if size != h.surface.Size() {
		h.surface.SetSize(size)
		h.canvas = graphics.NewRasterCanvas(size)
		h.surface.Paint(h.canvas)
	}
}

// Frame brings the raster up to date and returns it. It repaints only when
// the tree asked for it.
func (h *Host) Frame() *image.RGBA {
	h.surface.Frame(h.canvas)
	return h.canvas.Image()
}

// Snapshot paints a fresh raster of the current state.
func (h *Host) Snapshot() *image.RGBA {
	canvas := graphics.NewRasterCanvas(h.surface.Size())
	h.surface.Paint(canvas)
	return canvas.Image()
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return &errors.JoystickError{Op: "host.EncodePNG", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// WritePNG writes img to path as PNG.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return EncodePNG(f, img)
}
