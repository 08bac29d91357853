package layout

import (
	"math"

	"github.com/go-drift/joystick/pkg/graphics"
)

// Constraints bound the size a render box may choose during layout.
// MaxWidth and MaxHeight may be math.Inf(1) for unbounded axes.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper limit on either axis.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// Loosen drops the minimums.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Constrain returns the size closest to size that satisfies the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  min(max(size.Width, c.MinWidth), c.MaxWidth),
		Height: min(max(size.Height, c.MinHeight), c.MaxHeight),
	}
}

// WidthMode classifies the horizontal constraint for measure-style negotiation.
func (c Constraints) WidthMode() (MeasureMode, float64) {
	return classify(c.MinWidth, c.MaxWidth)
}

// HeightMode classifies the vertical constraint for measure-style negotiation.
func (c Constraints) HeightMode() (MeasureMode, float64) {
	return classify(c.MinHeight, c.MaxHeight)
}

func classify(lo, hi float64) (MeasureMode, float64) {
	switch {
	case lo >= hi:
		return MeasureExactly, hi
	case math.IsInf(hi, 1):
		return MeasureUnconstrained, 0
	default:
		return MeasureAtMost, hi
	}
}
