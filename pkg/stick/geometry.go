package stick

import (
	"math"

	"github.com/go-drift/joystick/pkg/graphics"
)

// Ratios of the stick circles to the widget width.
const (
	// BaseDivisor divides the width to get the base circle radius.
	BaseDivisor = 2.3
	// ThumbDivisor divides the width to get the thumb circle radius.
	ThumbDivisor = 4.0
	// RangeFactor is the fraction of the half width the thumb center may travel.
	RangeFactor = 0.46
)

// Geometry is derived from the widget bounds and never mutated afterwards.
//
// All radii scale with Bounds.Width only; Bounds.Height affects centering.
type Geometry struct {
	Bounds      graphics.Size
	Origin      graphics.Offset
	BaseRadius  float64
	ThumbRadius float64
	RangeRadius float64
}

// ComputeGeometry derives the stick geometry for a widget of the given size.
//
// If either dimension is zero or negative the radii are all zero and the
// widget renders nothing of size. The result is a deterministic function of
// its arguments.
func ComputeGeometry(width, height float64) Geometry {
	g := Geometry{
		Bounds: graphics.Size{Width: width, Height: height},
		Origin: graphics.Offset{X: math.Max(width, 0) / 2, Y: math.Max(height, 0) / 2},
	}
	if width <= 0 || height <= 0 {
		return g
	}
	g.BaseRadius = width / BaseDivisor
	g.ThumbRadius = width / ThumbDivisor
	g.RangeRadius = RangeFactor * width / 2
	return g
}

// IsDegenerate reports whether the thumb has no room to move.
func (g Geometry) IsDegenerate() bool {
	return g.RangeRadius <= 0
}

// Clamp is ClampToRange using the geometry's origin and range radius.
func (g Geometry) Clamp(sample graphics.Offset) graphics.Offset {
	return ClampToRange(sample, g.Origin, g.RangeRadius)
}

// Direction returns the normalized displacement of thumb from the origin.
// Components are in [-1, 1]; the zero vector is returned for degenerate geometry.
func (g Geometry) Direction(thumb graphics.Offset) Direction {
	if g.IsDegenerate() {
		return Direction{}
	}
	d := thumb.Sub(g.Origin)
	return Direction{
		X: clampUnit(d.X / g.RangeRadius),
		Y: clampUnit(d.Y / g.RangeRadius),
	}
}

// ClampToRange returns the thumb position for a raw pointer sample.
//
// Samples strictly inside the range circle are returned unchanged. Anything
// else is projected onto the circle along the ray from origin through sample.
// A non-positive rangeRadius yields origin.
func ClampToRange(sample, origin graphics.Offset, rangeRadius float64) graphics.Offset {
	if rangeRadius <= 0 {
		return origin
	}
	d := sample.Sub(origin)
	distance := d.Distance()
	if distance < rangeRadius {
		return sample
	}
	// unreachable while rangeRadius > 0, kept so the division below is always safe
	if distance == 0 {
		return origin
	}
	rate := distance / rangeRadius
	return graphics.Offset{
		X: d.X/rate + origin.X,
		Y: d.Y/rate + origin.Y,
	}
}

// Direction is a displacement normalized by the range radius.
// Y grows downwards, matching screen coordinates.
type Direction struct {
	X float64
	Y float64
}

// Magnitude returns the length of the direction vector, in [0, 1] for
// directions produced by Geometry.Direction from clamped thumbs.
func (d Direction) Magnitude() float64 {
	return math.Hypot(d.X, d.Y)
}

// Angle returns the angle in radians measured from +X towards +Y.
// The zero vector has angle 0.
func (d Direction) Angle() float64 {
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(d.Y, d.X)
}

// IsZero reports whether the stick is centered.
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
