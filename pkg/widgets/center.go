package widgets

import (
	"math"

	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/layout"
)

// Center positions its child at the center of the available space.
//
// Center expands to fill bounded axes and shrinks to the child on unbounded
// ones. The child is given loose constraints, allowing it to size itself.
//
// Example:
//
//	root := widgets.Center{Child: widgets.Joystick{}.CreateRenderObject()}.CreateRenderObject()
type Center struct {
	Child layout.RenderBox
}

// CreateRenderObject builds the render object for this configuration.
func (c Center) CreateRenderObject() *RenderCenter {
	center := &RenderCenter{}
	center.SetSelf(center)
	center.SetChild(c.Child)
	return center
}

// UpdateRenderObject swaps the child of an existing render object.
func (c Center) UpdateRenderObject(r *RenderCenter) {
	r.SetChild(c.Child)
}

// RenderCenter is the render object created by Center.
type RenderCenter struct {
	layout.RenderBoxBase
	child layout.RenderBox
}

// SetChild replaces the child.
func (r *RenderCenter) SetChild(child layout.RenderBox) {
	if r.child == child {
		return
	}
	layout.SetParentOnChild(r.child, nil)
	r.child = child
	layout.SetParentOnChild(r.child, r)
	r.MarkNeedsLayout()
}

// Child returns the current child, if any.
func (r *RenderCenter) Child() layout.RenderBox {
	return r.child
}

// VisitChildren calls visitor with the child, if any.
func (r *RenderCenter) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *RenderCenter) PerformLayout() {
	constraints := r.Constraints()
	targetWidth := constraints.MaxWidth
	targetHeight := constraints.MaxHeight

	if r.child != nil {
		r.child.Layout(constraints.Loosen(), true)
		childSize := r.child.Size()
		if math.IsInf(targetWidth, 1) {
			targetWidth = childSize.Width
		}
		if math.IsInf(targetHeight, 1) {
			targetHeight = childSize.Height
		}
	} else {
		if math.IsInf(targetWidth, 1) {
			targetWidth = 0
		}
		if math.IsInf(targetHeight, 1) {
			targetHeight = 0
		}
	}

	size := constraints.Constrain(graphics.Size{Width: targetWidth, Height: targetHeight})
	r.SetSize(size)

	if r.child != nil {
		childSize := r.child.Size()
		offset := graphics.Offset{
			X: (size.Width - childSize.Width) / 2,
			Y: (size.Height - childSize.Height) / 2,
		}
		r.child.SetParentData(&layout.BoxParentData{Offset: offset})
	}
}

func (r *RenderCenter) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *RenderCenter) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) || r.child == nil {
		return false
	}
	// Positions outside the child fall through to whatever is below.
	return r.child.HitTest(position.Sub(getChildOffset(r.child)), result)
}
