package widgets_test

import (
	"testing"

	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/layout"
	jtest "github.com/go-drift/joystick/pkg/testing"
	"github.com/go-drift/joystick/pkg/widgets"
)

func TestCenter_ChildOffset(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 400, Height: 300})

	box := widgets.Joystick{}.CreateRenderObject()
	root := widgets.Center{Child: box}.CreateRenderObject()
	tester.PumpWidget(root)

	if root.Size() != (graphics.Size{Width: 400, Height: 300}) {
		t.Errorf("center size = %v, want the surface size", root.Size())
	}
	pd, ok := box.ParentData().(*layout.BoxParentData)
	if !ok {
		t.Fatal("expected BoxParentData on child render object")
	}
	if pd.Offset != (graphics.Offset{X: 115, Y: 65}) {
		t.Errorf("expected child offset {115, 65}, got %v", pd.Offset)
	}

	ops := tester.DisplayOps()
	if len(jtest.FilterOps(ops, "translate")) != 1 {
		t.Errorf("expected the child to be painted through one translate, got %v", ops)
	}
}

func TestCenter_ShrinksOnUnboundedAxes(t *testing.T) {
	box := widgets.Joystick{}.CreateRenderObject()
	root := widgets.Centered(box).CreateRenderObject()
	root.Layout(layout.Unbounded(), false)

	if root.Size() != (graphics.Size{Width: 170, Height: 170}) {
		t.Errorf("size = %v, want the child size", root.Size())
	}

	empty := widgets.Center{}.CreateRenderObject()
	empty.Layout(layout.Unbounded(), false)
	if empty.Size() != (graphics.Size{}) {
		t.Errorf("empty center size = %v, want zero", empty.Size())
	}
}

func TestCenter_HitsOutsideChildPassThrough(t *testing.T) {
	tester := jtest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 400, Height: 300})
	box := widgets.Joystick{}.CreateRenderObject()
	root := widgets.Centered(box).CreateRenderObject()
	tester.PumpWidget(root)

	var result layout.HitTestResult
	if root.HitTest(graphics.Offset{X: 5, Y: 5}, &result) {
		t.Error("corner should not hit the centered child")
	}
	if !root.HitTest(graphics.Offset{X: 120, Y: 70}, &result) {
		t.Fatal("position inside the child should hit")
	}
	if len(result.Entries) != 1 || result.Entries[0].Position != (graphics.Offset{X: 5, Y: 5}) {
		t.Errorf("entries = %+v, want the child at local {5 5}", result.Entries)
	}
}

func TestCenter_UpdateSwapsChild(t *testing.T) {
	first := widgets.Joystick{}.CreateRenderObject()
	second := widgets.Joystick{Density: 2}.CreateRenderObject()
	root := widgets.Centered(first).CreateRenderObject()

	widgets.Centered(second).UpdateRenderObject(root)

	if root.Child() != second {
		t.Fatal("expected the new child")
	}
	if first.Parent() != nil {
		t.Error("old child should be detached")
	}
	if second.Parent() != root {
		t.Error("new child should point at the center")
	}
}
