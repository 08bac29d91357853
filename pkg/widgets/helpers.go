package widgets

import (
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/layout"
)

// getChildOffset extracts the offset from a child's parent data.
func getChildOffset(child layout.RenderBox) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*layout.BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

func withinBounds(position graphics.Offset, size graphics.Size) bool {
	return layout.WithinBounds(position, size)
}

// Centered wraps a child in a Center widget.
func Centered(child layout.RenderBox) Center {
	return Center{Child: child}
}
