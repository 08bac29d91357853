package widgets_test

import (
	"math"
	"testing"

	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/layout"
	"github.com/go-drift/joystick/pkg/stick"
	jtest "github.com/go-drift/joystick/pkg/testing"
	"github.com/go-drift/joystick/pkg/widgets"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestJoystick_ExactSizeWins(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 300, Height: 200})

	box := widgets.Joystick{}.CreateRenderObject()
	tester.PumpWidget(box)

	if box.Size() != (graphics.Size{Width: 300, Height: 200}) {
		t.Fatalf("size = %v, want 300x200", box.Size())
	}
	g := box.Geometry()
	if g.Origin != (graphics.Offset{X: 150, Y: 100}) {
		t.Errorf("origin = %v, want {150 100}", g.Origin)
	}
	if !approx(g.BaseRadius, 300/2.3) || !approx(g.ThumbRadius, 75) || !approx(g.RangeRadius, 69) {
		t.Errorf("radii = %v %v %v", g.BaseRadius, g.ThumbRadius, g.RangeRadius)
	}
}

func TestJoystick_LooseConstraintsCapPreferredSize(t *testing.T) {
	tests := []struct {
		name    string
		surface graphics.Size
		density float64
		want    graphics.Size
	}{
		{"preferred fits", graphics.Size{Width: 400, Height: 300}, 1, graphics.Size{Width: 170, Height: 170}},
		{"density scales", graphics.Size{Width: 400, Height: 400}, 2, graphics.Size{Width: 340, Height: 340}},
		{"height caps", graphics.Size{Width: 400, Height: 300}, 2, graphics.Size{Width: 340, Height: 300}},
		{"zero density means one", graphics.Size{Width: 400, Height: 300}, 0, graphics.Size{Width: 170, Height: 170}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := jtest.NewWidgetTesterWithT(t)
			tester.SetSize(tt.surface)
			box := widgets.Joystick{Density: tt.density}.CreateRenderObject()
			tester.PumpWidget(widgets.Centered(box).CreateRenderObject())

			if box.Size() != tt.want {
				t.Errorf("size = %v, want %v", box.Size(), tt.want)
			}
		})
	}
}

func TestJoystick_UnconstrainedUsesPreferredSize(t *testing.T) {
	box := widgets.Joystick{Density: 1.5}.CreateRenderObject()
	box.Layout(layout.Unbounded(), false)

	if box.Size() != (graphics.Size{Width: 255, Height: 255}) {
		t.Errorf("size = %v, want 255x255", box.Size())
	}
}

func TestPreferredSize_TruncatesToWholePixels(t *testing.T) {
	tests := []struct {
		density float64
		want    float64
	}{
		{1, 170},
		{1.33, 226},
		{2.75, 467},
		{40.0 / 170, 40},
		{0, 170},
		{-2, 170},
	}
	for _, tt := range tests {
		if got := widgets.PreferredSize(tt.density); got != tt.want {
			t.Errorf("PreferredSize(%v) = %v, want %v", tt.density, got, tt.want)
		}
	}
}

func TestJoystick_FractionalDensityLaysOutWholePixels(t *testing.T) {
	box := widgets.Joystick{Density: 1.33}.CreateRenderObject()
	box.Layout(layout.Unbounded(), false)

	if box.Size() != (graphics.Size{Width: 226, Height: 226}) {
		t.Errorf("size = %v, want 226x226", box.Size())
	}
	if g := box.Geometry(); g.Origin != (graphics.Offset{X: 113, Y: 113}) {
		t.Errorf("origin = %v, want {113 113}", g.Origin)
	}
}

func TestJoystick_PaintsNothingBeforeLayout(t *testing.T) {
	box := widgets.Joystick{}.CreateRenderObject()
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(graphics.Size{Width: 170, Height: 170})
	box.Paint(&layout.PaintContext{Canvas: canvas})

	if n := recorder.EndRecording().Len(); n != 0 {
		t.Errorf("expected no ops before layout, got %d", n)
	}
	if box.GeometryKnown() {
		t.Error("geometry should be unknown before layout")
	}
}

func TestJoystick_PaintOps(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	tester.PumpWidget(widgets.Joystick{}.CreateRenderObject())

	ops := tester.DisplayOps()
	var names []string
	for _, op := range ops {
		names = append(names, op.Op)
	}
	want := []string{"clear", "drawCircleShadow", "drawCircle", "drawCircleShadow", "drawCircle"}
	if len(names) != len(want) {
		t.Fatalf("ops = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ops = %v, want %v", names, want)
		}
	}

	base := ops[2].Params
	if base["color"] != "0xFFBDC3C7" || base["radius"] != 73.91 || base["cx"] != 85.0 || base["cy"] != 85.0 {
		t.Errorf("base circle = %s", jtest.FormatOp(ops[2]))
	}
	thumb := ops[4].Params
	if thumb["color"] != "0xFF2C3E50" || thumb["radius"] != 42.5 {
		t.Errorf("thumb circle = %s", jtest.FormatOp(ops[4]))
	}
	shadow := ops[1].Params
	if shadow["color"] != "0xFF000000" || shadow["blur"] != 15.0 {
		t.Errorf("shadow = %s", jtest.FormatOp(ops[1]))
	}
}

func TestJoystick_DragClampsAndRepaints(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	box := widgets.Joystick{}.CreateRenderObject()
	tester.PumpWidget(box)

	tester.SendPointerDown(graphics.Offset{X: 85, Y: 85}, 1)
	tester.SendPointerMove(graphics.Offset{X: 85, Y: 200}, 1)
	if !tester.Surface().NeedsFrame() {
		t.Fatal("pointer move should schedule a paint")
	}
	tester.Pump()

	state := box.State()
	if state.Phase != stick.Dragging {
		t.Fatalf("phase = %v, want dragging", state.Phase)
	}
	if !approx(state.Thumb.X, 85) || !approx(state.Thumb.Y, 124.1) {
		t.Errorf("thumb = %v, want {85 124.1}", state.Thumb)
	}
	circles := jtest.FilterOps(tester.DisplayOps(), "drawCircle")
	if len(circles) != 2 || circles[1].Params["cy"] != 124.1 {
		t.Errorf("thumb should be painted at the clamped position, got %v", circles)
	}

	tester.SendPointerUp(graphics.Offset{X: 85, Y: 200}, 1)
	tester.Pump()
	if box.State().Thumb != box.Geometry().Origin {
		t.Errorf("release should recenter, thumb = %v", box.State().Thumb)
	}
}

func TestJoystick_OnChangedAndOnTransition(t *testing.T) {
	var directions []stick.Direction
	var transitions []stick.Transition
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	tester.PumpWidget(widgets.Joystick{
		OnChanged:    func(d stick.Direction) { directions = append(directions, d) },
		OnTransition: func(tr stick.Transition) { transitions = append(transitions, tr) },
	}.CreateRenderObject())

	tester.DragPath(
		graphics.Offset{X: 85, Y: 85},
		graphics.Offset{X: 0, Y: 85},
		graphics.Offset{X: 0, Y: 85},
	)

	if len(directions) != 4 || len(transitions) != 4 {
		t.Fatalf("got %d directions and %d transitions, want 4 each", len(directions), len(transitions))
	}
	if d := directions[1]; !approx(d.X, -1) || !approx(d.Y, 0) {
		t.Errorf("direction = %v, want {-1 0}", d)
	}
	if transitions[0].From.Phase != stick.Idle || transitions[0].To.Phase != stick.Dragging {
		t.Errorf("first transition = %+v", transitions[0])
	}
	if transitions[3].Event.Kind != stick.EventRelease || transitions[3].To.Phase != stick.Idle {
		t.Errorf("last transition = %+v", transitions[3])
	}
}

func TestJoystick_SecondPointerPressTakesOver(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	box := widgets.Joystick{}.CreateRenderObject()
	tester.PumpWidget(box)

	tester.SendPointerDown(graphics.Offset{X: 90, Y: 90}, 1)
	tester.SendPointerDown(graphics.Offset{X: 85, Y: 160}, 2)

	state := box.State()
	if state.Phase != stick.Dragging || state.Pointer != 2 || !approx(state.Thumb.Y, 124.1) {
		t.Errorf("second press should take over, got %+v", state)
	}

	// The first pointer is still captured but no longer owns the stick.
	tester.SendPointerMove(graphics.Offset{X: 10, Y: 85}, 1)
	if box.State() != state {
		t.Errorf("move from the previous owner should be ignored, got %+v", box.State())
	}

	tester.SendPointerUp(graphics.Offset{X: 85, Y: 160}, 2)
	if got := box.State(); got.Phase != stick.Idle || got.Thumb != (graphics.Offset{X: 85, Y: 85}) {
		t.Errorf("release should recenter, got %+v", got)
	}
}

func TestJoystick_CancelKeepsThumbAndNextPressWins(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	box := widgets.Joystick{}.CreateRenderObject()
	tester.PumpWidget(box)

	tester.SendPointerDown(graphics.Offset{X: 90, Y: 90}, 1)
	state := box.State()
	tester.SendPointerCancel(1)
	if box.State() != state {
		t.Errorf("cancel should keep the thumb, got %+v", box.State())
	}
	if tester.Surface().Captured(1) {
		t.Error("cancel should release the capture")
	}

	tester.SendPointerDown(graphics.Offset{X: 85, Y: 160}, 2)
	if got := box.State(); got.Phase != stick.Dragging || got.Pointer != 2 || !approx(got.Thumb.Y, 124.1) {
		t.Fatalf("press after cancel should drive the stick, got %+v", got)
	}
	tester.SendPointerUp(graphics.Offset{X: 85, Y: 160}, 2)
	if got := box.State(); got.Phase != stick.Idle || got.Thumb != (graphics.Offset{X: 85, Y: 85}) {
		t.Errorf("stick should return to idle, got %+v", got)
	}
}

func TestJoystick_EventsBeforeLayoutAreIgnored(t *testing.T) {
	called := false
	box := widgets.Joystick{OnChanged: func(stick.Direction) { called = true }}.CreateRenderObject()
	box.HandlePointer(gestures.PointerEvent{PointerID: 1, Phase: gestures.PointerPhaseDown})

	if called || box.State().Phase != stick.Idle {
		t.Error("events before layout should be ignored")
	}
}

func TestJoystick_ResizeKeepsThumbInRange(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 340, Height: 340})
	box := widgets.Joystick{}.CreateRenderObject()
	tester.PumpWidget(box)

	tester.SendPointerDown(graphics.Offset{X: 170, Y: 300}, 1)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	tester.Pump()

	g := box.Geometry()
	s := box.State()
	if s.Phase != stick.Dragging {
		t.Fatalf("phase = %v, want dragging", s.Phase)
	}
	if d := s.Thumb.DistanceTo(g.Origin); d > g.RangeRadius+1e-9 {
		t.Errorf("thumb %v is %v from origin, range %v", s.Thumb, d, g.RangeRadius)
	}
}

func TestJoystick_UpdateRenderObjectKeepsState(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 400, Height: 400})
	cfg := widgets.Joystick{}
	box := cfg.CreateRenderObject()
	tester.PumpWidget(widgets.Centered(box).CreateRenderObject())

	center := jtest.RenderCenter(box)
	tester.SendPointerDown(center.Add(graphics.Offset{X: 10}), 1)

	called := false
	cfg.Density = 2
	cfg.OnChanged = func(stick.Direction) { called = true }
	cfg.UpdateRenderObject(box)
	tester.Pump()

	if box.Size() != (graphics.Size{Width: 340, Height: 340}) {
		t.Errorf("size = %v, want 340x340 after density change", box.Size())
	}
	if box.State().Phase != stick.Dragging {
		t.Error("update should keep the drag")
	}

	tester.SendPointerMove(center, 1)
	if !called {
		t.Error("the updated OnChanged should receive later events")
	}
}

func TestJoystick_PanicInCallbackIsRecovered(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	tester.PumpWidget(widgets.Joystick{
		OnChanged: func(stick.Direction) { panic("boom") },
	}.CreateRenderObject())

	tester.TapAt(graphics.Offset{X: 85, Y: 85})

	panics := tester.ReportedPanics()
	if len(panics) != 2 {
		t.Fatalf("expected 2 recovered panics, got %d", len(panics))
	}
	if panics[0].Op != "widgets.RenderJoystick.HandlePointer" {
		t.Errorf("Op = %q", panics[0].Op)
	}
}

func TestJoystick_GoldenIdle(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	tester.PumpWidget(widgets.Joystick{}.CreateRenderObject())

	tester.CaptureSnapshot().MatchesFile(t, "testdata/joystick_idle.json")
}

func TestJoystick_GoldenDragged(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 170, Height: 170})
	tester.PumpWidget(widgets.Joystick{}.CreateRenderObject())
	tester.SendPointerDown(graphics.Offset{X: 85, Y: 160}, 1)

	tester.CaptureSnapshot().MatchesFile(t, "testdata/joystick_dragged.json")
}
