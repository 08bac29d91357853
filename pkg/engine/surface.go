package engine

import (
	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/layout"
)

// Surface hosts a render tree at a fixed size. It runs layout and paint
// frames and routes pointer events to the render objects under the pointer.
//
// A Surface is not safe for concurrent use; hosts call it from their event loop.
type Surface struct {
	// Background fills the canvas before the root paints.
	Background graphics.Color

	size      graphics.Size
	root      layout.RenderBox
	owner     *layout.PipelineOwner
	captures  map[int64][]capturedHandler
	positions map[int64]graphics.Offset
}

// capturedHandler remembers where the handler sat relative to the surface
// when its pointer went down, so later events can be mapped to local space.
type capturedHandler struct {
	handler layout.PointerHandler
	offset  graphics.Offset
}

// NewSurface returns an empty surface of the given size with a white background.
func NewSurface(size graphics.Size) *Surface {
	return &Surface{
		Background: graphics.ColorWhite,
		size:       size,
		owner:      &layout.PipelineOwner{},
		captures:   make(map[int64][]capturedHandler),
		positions:  make(map[int64]graphics.Offset),
	}
}

// Mount replaces the root render object. Pointer captures from the previous
// tree are dropped.
func (s *Surface) Mount(root layout.RenderBox) {
	if s.root != nil {
		s.root.SetOwner(nil)
	}
	s.root = root
	clear(s.captures)
	clear(s.positions)
	if root == nil {
		return
	}
	root.SetOwner(s.owner)
	s.owner.ScheduleLayout(root)
}

// Root returns the mounted render object.
func (s *Surface) Root() layout.RenderBox {
	return s.root
}

// Owner returns the pipeline owner shared by the mounted tree.
func (s *Surface) Owner() *layout.PipelineOwner {
	return s.owner
}

// Size returns the surface size.
func (s *Surface) Size() graphics.Size {
	return s.size
}

// SetSize resizes the surface and schedules a layout if the size changed.
func (s *Surface) SetSize(size graphics.Size) {
	if s.size == size {
		return
	}
	s.size = size
	if s.root != nil {
		s.owner.ScheduleLayout(s.root)
	}
}

// NeedsFrame reports whether a layout or paint is pending.
func (s *Surface) NeedsFrame() bool {
	return s.owner.NeedsLayout() || s.owner.NeedsPaint()
}

// Frame runs a pending layout and, if anything asked for it, paints the tree
// onto canvas. It reports whether it painted.
func (s *Surface) Frame(canvas graphics.Canvas) bool {
	if s.root == nil {
		return false
	}
	s.owner.FlushLayoutForRoot(s.root, layout.Tight(s.size))
	if !s.owner.FlushPaint() {
		return false
	}
	s.paint(canvas)
	return true
}

// Paint lays out if needed and paints the tree onto canvas unconditionally.
func (s *Surface) Paint(canvas graphics.Canvas) {
	if s.root == nil {
		return
	}
	s.owner.FlushLayoutForRoot(s.root, layout.Tight(s.size))
	s.owner.FlushPaint()
	s.paint(canvas)
}

func (s *Surface) paint(canvas graphics.Canvas) {
	canvas.Clear(s.Background)
	ctx := &layout.PaintContext{Canvas: canvas}
	s.root.Paint(ctx)
}

// DispatchPointer routes a pointer event given in surface coordinates.
//
// A down event hit tests the tree and captures every pointer handler that was
// hit for that pointer ID. Move, up, and cancel events go to the captured
// handlers only, even when the pointer has left their bounds. Up and cancel
// release the capture. Each handler receives the position in its own
// coordinate space and the delta since the previous event of the pointer.
//
// It reports whether any handler received the event.
func (s *Surface) DispatchPointer(event gestures.PointerEvent) bool {
	if s.root == nil {
		return false
	}
	pointerID := event.PointerID
	position := event.Position

	delta := graphics.Offset{}
	if event.Phase != gestures.PointerPhaseDown {
		if last, ok := s.positions[pointerID]; ok {
			delta = position.Sub(last)
		}
	}
	s.positions[pointerID] = position

	var handlers []capturedHandler
	if event.Phase == gestures.PointerPhaseDown {
		result := &layout.HitTestResult{}
		if s.root.HitTest(position, result) && len(result.Entries) > 0 {
			handlers = collectPointerHandlers(result.Entries, position)
		}
		if len(handlers) > 0 {
			s.captures[pointerID] = handlers
		} else {
			delete(s.captures, pointerID)
		}
	} else {
		handlers = s.captures[pointerID]
	}

	if event.Phase == gestures.PointerPhaseUp || event.Phase == gestures.PointerPhaseCancel {
		delete(s.captures, pointerID)
		delete(s.positions, pointerID)
	}

	for _, captured := range handlers {
		captured.handler.HandlePointer(gestures.PointerEvent{
			PointerID: pointerID,
			Position:  position.Sub(captured.offset),
			Delta:     delta,
			Phase:     event.Phase,
		})
	}
	return len(handlers) > 0
}

// Captured reports whether pointerID is currently captured by any handler.
func (s *Surface) Captured(pointerID int64) bool {
	return len(s.captures[pointerID]) > 0
}

func collectPointerHandlers(entries []layout.HitTestEntry, position graphics.Offset) []capturedHandler {
	handlers := make([]capturedHandler, 0, len(entries))
	seen := make(map[layout.PointerHandler]struct{})
	for _, entry := range entries {
		handler, ok := entry.Target.(layout.PointerHandler)
		if !ok {
			continue
		}
		if _, exists := seen[handler]; exists {
			continue
		}
		seen[handler] = struct{}{}
		handlers = append(handlers, capturedHandler{
			handler: handler,
			offset:  position.Sub(entry.Position),
		})
	}
	return handlers
}
