package testing

import (
	"fmt"

	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/layout"
)

func (t *WidgetTester) allocPointerID() int64 {
	t.nextID++
	return t.nextID
}

// TapAt simulates a tap at the given logical position.
func (t *WidgetTester) TapAt(pos graphics.Offset) error {
	id := t.allocPointerID()
	if err := t.SendPointerDown(pos, id); err != nil {
		return err
	}
	return t.SendPointerUp(pos, id)
}

// TapCenter simulates a tap at the center of ro.
func (t *WidgetTester) TapCenter(ro layout.RenderObject) error {
	return t.TapAt(RenderCenter(ro))
}

// DragFrom simulates a drag from start by delta with one intermediate move.
func (t *WidgetTester) DragFrom(start, delta graphics.Offset) error {
	id := t.allocPointerID()
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	end := start.Add(delta)
	if err := t.SendPointerMove(end, id); err != nil {
		return err
	}
	return t.SendPointerUp(end, id)
}

// DragPath presses at the first point, moves through the rest, and releases
// at the last one.
func (t *WidgetTester) DragPath(points ...graphics.Offset) error {
	if len(points) == 0 {
		return fmt.Errorf("DragPath: no points")
	}
	id := t.allocPointerID()
	if err := t.SendPointerDown(points[0], id); err != nil {
		return err
	}
	for _, p := range points[1:] {
		if err := t.SendPointerMove(p, id); err != nil {
			return err
		}
	}
	return t.SendPointerUp(points[len(points)-1], id)
}

// SendPointerDown sends a pointer-down event at pos with the given pointer ID.
func (t *WidgetTester) SendPointerDown(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(pos, pointerID, gestures.PointerPhaseDown)
}

// SendPointerMove sends a pointer-move event at pos with the given pointer ID.
func (t *WidgetTester) SendPointerMove(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(pos, pointerID, gestures.PointerPhaseMove)
}

// SendPointerUp sends a pointer-up event at pos with the given pointer ID.
func (t *WidgetTester) SendPointerUp(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(pos, pointerID, gestures.PointerPhaseUp)
}

// SendPointerCancel sends a pointer-cancel event at the last known position
// of the given pointer ID.
func (t *WidgetTester) SendPointerCancel(pointerID int64) error {
	return t.sendPointer(t.pointers[pointerID], pointerID, gestures.PointerPhaseCancel)
}

func (t *WidgetTester) sendPointer(pos graphics.Offset, pointerID int64, phase gestures.PointerPhase) error {
	if t.surface.Root() == nil {
		return fmt.Errorf("no widget mounted")
	}
	if phase == gestures.PointerPhaseUp || phase == gestures.PointerPhaseCancel {
		delete(t.pointers, pointerID)
	} else {
		t.pointers[pointerID] = pos
	}
	t.surface.DispatchPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     phase,
	})
	return nil
}

// RenderCenter returns the center of a render object in absolute (root-relative)
// coordinates by walking the full ancestor chain.
func RenderCenter(ro layout.RenderObject) graphics.Offset {
	size := ro.Size()
	center := graphics.Offset{X: size.Width / 2, Y: size.Height / 2}
	return AbsoluteOffset(ro).Add(center)
}

// AbsoluteOffset walks up the parent chain accumulating offsets from
// BoxParentData to compute the root-relative position of a render object.
func AbsoluteOffset(ro layout.RenderObject) graphics.Offset {
	offset := graphics.Offset{}
	cur := ro
	for cur != nil {
		if pd, ok := cur.ParentData().(*layout.BoxParentData); ok {
			offset = offset.Add(pd.Offset)
		}
		parent, ok := cur.(interface{ Parent() layout.RenderObject })
		if !ok {
			break
		}
		cur = parent.Parent()
	}
	return offset
}
