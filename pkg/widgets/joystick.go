package widgets

import (
	"math"

	"github.com/go-drift/joystick/pkg/errors"
	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/layout"
	"github.com/go-drift/joystick/pkg/stick"
)

// DefaultJoystickSize is the preferred extent of a Joystick in logical
// pixels, before density scaling.
const DefaultJoystickSize = 170

// PreferredSize returns DefaultJoystickSize scaled by density and truncated
// to whole pixels. Density <= 0 means 1.
func PreferredSize(density float64) float64 {
	if density <= 0 {
		density = 1
	}
	// The epsilon keeps sizes like 170 * (40/170) from truncating to 39.
	return math.Floor(DefaultJoystickSize*density + 1e-9)
}

// Fixed joystick colors.
const (
	JoystickBaseColor   graphics.Color = 0xffbdc3c7
	JoystickThumbColor  graphics.Color = 0xff2c3e50
	JoystickShadowColor graphics.Color = 0xff000000
	JoystickShadowBlur                 = 15.0
)

// Joystick is a virtual analog stick: a base circle with a draggable thumb
// that stays inside a fixed range around the center.
//
// The stick prefers a square of PreferredSize(Density) pixels. Exact
// constraints override the preference, and loose constraints cap it.
//
// Example:
//
//	stick := widgets.Joystick{
//	    Density: 2,
//	    OnChanged: func(d stick.Direction) {
//	        player.Move(d.X, d.Y)
//	    },
//	}
//	root := stick.CreateRenderObject()
type Joystick struct {
	// Density scales the preferred size. Zero or negative means 1.
	Density float64

	// OnChanged is called with the normalized thumb displacement after every
	// recognized pointer event, including the release that recenters it.
	OnChanged func(stick.Direction)

	// OnTransition observes every state machine transition.
	OnTransition func(stick.Transition)
}

// CreateRenderObject builds the render object for this configuration.
func (j Joystick) CreateRenderObject() *RenderJoystick {
	r := &RenderJoystick{}
	r.machine = stick.NewMachine(r.observe)
	j.UpdateRenderObject(r)
	r.SetSelf(r)
	return r
}

// UpdateRenderObject applies this configuration to an existing render object.
// The stick state survives the update.
func (j Joystick) UpdateRenderObject(r *RenderJoystick) {
	density := j.Density
	if density <= 0 {
		density = 1
	}
	if r.density != density {
		r.density = density
		r.MarkNeedsLayout()
	}
	r.onChanged = j.OnChanged
	r.onTransition = j.OnTransition
}

// RenderJoystick lays out, paints, and drives a single stick.
type RenderJoystick struct {
	layout.RenderBoxBase
	density      float64
	machine      *stick.Machine
	onChanged    func(stick.Direction)
	onTransition func(stick.Transition)
}

// PerformLayout resolves each axis against the preferred size and
// recomputes the geometry when the size changed.
func (r *RenderJoystick) PerformLayout() {
	constraints := r.Constraints()
	preferred := PreferredSize(r.density)

	widthMode, width := constraints.WidthMode()
	heightMode, height := constraints.HeightMode()
	size := constraints.Constrain(graphics.Size{
		Width:  layout.ResolveExtent(widthMode, width, preferred),
		Height: layout.ResolveExtent(heightMode, height, preferred),
	})
	r.SetSize(size)

	if r.machine.Resize(size.Width, size.Height) {
		r.MarkNeedsPaint()
	}
}

// Paint draws the base circle at the origin and the thumb at its current
// position. Nothing is drawn before the first layout.
func (r *RenderJoystick) Paint(ctx *layout.PaintContext) {
	if !r.machine.GeometryKnown() {
		return
	}
	g := r.machine.Geometry()
	s := r.machine.State()
	paintDisc(ctx.Canvas, g.Origin, g.BaseRadius, JoystickBaseColor)
	paintDisc(ctx.Canvas, s.Thumb, g.ThumbRadius, JoystickThumbColor)
}

func paintDisc(canvas graphics.Canvas, center graphics.Offset, radius float64, color graphics.Color) {
	if radius <= 0 {
		return
	}
	canvas.DrawCircleShadow(center, radius, *graphics.NewBoxShadow(JoystickShadowColor, JoystickShadowBlur))
	paint := graphics.DefaultPaint()
	paint.Color = color
	canvas.DrawCircle(center, radius, paint)
}

// HitTest claims every position inside the widget bounds.
func (r *RenderJoystick) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	result.Add(r, position)
	return true
}

// HandlePointer feeds down, move, and up events to the stick. Cancel is
// ignored, so a cancelled drag keeps its last thumb position until the next
// event from the same pointer.
func (r *RenderJoystick) HandlePointer(event gestures.PointerEvent) {
	defer errors.Recover("widgets.RenderJoystick.HandlePointer")

	var kind stick.EventKind
	switch event.Phase {
	case gestures.PointerPhaseDown:
		kind = stick.EventPress
	case gestures.PointerPhaseMove:
		kind = stick.EventMove
	case gestures.PointerPhaseUp:
		kind = stick.EventRelease
	default:
		return
	}

	changed := r.machine.Handle(stick.Event{
		Kind:    kind,
		Point:   event.Position,
		Pointer: event.PointerID,
	})
	if !changed {
		return
	}
	r.MarkNeedsPaint()
	if r.onChanged != nil {
		r.onChanged(r.machine.Direction())
	}
}

func (r *RenderJoystick) observe(t stick.Transition) {
	if r.onTransition != nil {
		r.onTransition(t)
	}
}

// Density returns the density in effect after normalization.
func (r *RenderJoystick) Density() float64 {
	return r.density
}

// GeometryKnown reports whether the widget has been laid out.
func (r *RenderJoystick) GeometryKnown() bool {
	return r.machine.GeometryKnown()
}

// Geometry returns the geometry from the last layout.
func (r *RenderJoystick) Geometry() stick.Geometry {
	return r.machine.Geometry()
}

// State returns the current stick state.
func (r *RenderJoystick) State() stick.State {
	return r.machine.State()
}

// Direction returns the normalized thumb displacement.
func (r *RenderJoystick) Direction() stick.Direction {
	return r.machine.Direction()
}
