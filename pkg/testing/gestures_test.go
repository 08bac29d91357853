package testing

import (
	"math"
	"testing"

	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/stick"
	"github.com/go-drift/joystick/pkg/widgets"
)

func TestDragFrom_RecentersOnRelease(t *testing.T) {
	var directions []stick.Direction
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	box := widgets.Joystick{
		OnChanged: func(d stick.Direction) { directions = append(directions, d) },
	}.CreateRenderObject()
	tester.PumpWidget(box)

	if err := tester.DragFrom(graphics.Offset{X: 85, Y: 85}, graphics.Offset{X: 0, Y: 200}); err != nil {
		t.Fatalf("DragFrom failed: %v", err)
	}

	if len(directions) != 3 {
		t.Fatalf("expected 3 direction updates, got %d", len(directions))
	}
	if d := directions[1]; math.Abs(d.X) > 1e-9 || math.Abs(d.Y-1) > 1e-9 {
		t.Errorf("direction after move = %v, want {0 1}", directions[1])
	}
	if !directions[2].IsZero() {
		t.Errorf("direction after release = %v, want zero", directions[2])
	}
	if box.State().Phase != stick.Idle {
		t.Errorf("phase = %v, want idle", box.State().Phase)
	}
}

func TestSendPointer_NoWidget(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if err := tester.TapAt(graphics.Offset{X: 1, Y: 1}); err == nil {
		t.Error("expected error without a mounted widget")
	}
}

func TestDragPath_NoPoints(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if err := tester.DragPath(); err == nil {
		t.Error("expected error for an empty path")
	}
}

func TestSendPointerCancel_KeepsThumb(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	box := widgets.Joystick{}.CreateRenderObject()
	tester.PumpWidget(box)

	tester.SendPointerDown(graphics.Offset{X: 100, Y: 85}, 3)
	tester.SendPointerCancel(3)

	state := box.State()
	if state.Phase != stick.Dragging || state.Thumb != (graphics.Offset{X: 100, Y: 85}) {
		t.Errorf("cancel should be ignored, got %+v", state)
	}
	if tester.Surface().Captured(3) {
		t.Error("cancel should still release the pointer capture")
	}
}

func TestRenderCenter_NestedChild(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 400, Height: 300})
	box := widgets.Joystick{}.CreateRenderObject()
	tester.PumpWidget(widgets.Centered(box).CreateRenderObject())

	if got := RenderCenter(box); got != (graphics.Offset{X: 200, Y: 150}) {
		t.Errorf("RenderCenter = %v, want {200 150}", got)
	}
	if got := AbsoluteOffset(box); got != (graphics.Offset{X: 115, Y: 65}) {
		t.Errorf("AbsoluteOffset = %v, want {115 65}", got)
	}
}
