package layout

import (
	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
)

// HitTestEntry is a render object hit during a hit test together with the
// position in its own coordinate space.
type HitTestEntry struct {
	Target   RenderObject
	Position graphics.Offset
}

// HitTestResult collects hit test entries, deepest first.
type HitTestResult struct {
	Entries []HitTestEntry
}

// Add inserts a render object into the hit test result list. position is the
// hit position in target's local coordinates.
func (h *HitTestResult) Add(target RenderObject, position graphics.Offset) {
	h.Entries = append(h.Entries, HitTestEntry{Target: target, Position: position})
}

// PointerHandler receives pointer events routed from hit testing.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent)
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}
