package stick

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/joystick/pkg/graphics"
)

const tolerance = 1e-9

func TestComputeGeometry_Width170(t *testing.T) {
	g := ComputeGeometry(170, 170)

	assert.Equal(t, graphics.Offset{X: 85, Y: 85}, g.Origin)
	assert.InDelta(t, 73.913, g.BaseRadius, 0.001)
	assert.Equal(t, 42.5, g.ThumbRadius)
	assert.InDelta(t, 39.1, g.RangeRadius, tolerance)
	assert.Equal(t, graphics.Size{Width: 170, Height: 170}, g.Bounds)
}

func TestComputeGeometry_ScalesWithWidthOnly(t *testing.T) {
	wide := ComputeGeometry(200, 100)
	tall := ComputeGeometry(200, 400)

	assert.Equal(t, wide.BaseRadius, tall.BaseRadius)
	assert.Equal(t, wide.ThumbRadius, tall.ThumbRadius)
	assert.Equal(t, wide.RangeRadius, tall.RangeRadius)
	assert.Equal(t, graphics.Offset{X: 100, Y: 50}, wide.Origin)
	assert.Equal(t, graphics.Offset{X: 100, Y: 200}, tall.Origin)
}

func TestComputeGeometry_RangeInsideBase(t *testing.T) {
	for _, w := range []float64{0.5, 1, 17, 170, 1080, 1e6} {
		g := ComputeGeometry(w, w)
		assert.Greater(t, g.RangeRadius, 0.0, "width %v", w)
		assert.Less(t, g.RangeRadius, g.BaseRadius, "width %v", w)
		assert.False(t, g.IsDegenerate())
	}
}

func TestComputeGeometry_Degenerate(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		origin        graphics.Offset
	}{
		{"zero", 0, 0, graphics.Offset{}},
		{"zero height", 100, 0, graphics.Offset{X: 50}},
		{"negative width", -40, 100, graphics.Offset{Y: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeGeometry(tt.width, tt.height)
			assert.Zero(t, g.BaseRadius)
			assert.Zero(t, g.ThumbRadius)
			assert.Zero(t, g.RangeRadius)
			assert.True(t, g.IsDegenerate())
			assert.Equal(t, tt.origin, g.Origin)
		})
	}
}

func TestComputeGeometry_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		w := rng.Float64() * 2000
		h := rng.Float64() * 2000
		assert.Equal(t, ComputeGeometry(w, h), ComputeGeometry(w, h))
	}
}

func TestClampToRange_Examples(t *testing.T) {
	g := ComputeGeometry(170, 170)

	got := g.Clamp(graphics.Offset{X: 85, Y: 200})
	assert.InDelta(t, 85, got.X, tolerance)
	assert.InDelta(t, 124.1, got.Y, tolerance)

	inside := graphics.Offset{X: 90, Y: 90}
	assert.Equal(t, inside, g.Clamp(inside))
}

func TestClampToRange_InsideIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	origin := graphics.Offset{X: 85, Y: 85}
	const r = 39.1
	for i := 0; i < 1000; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := rng.Float64() * r * 0.999
		p := origin.Add(graphics.Offset{X: dist * math.Cos(angle), Y: dist * math.Sin(angle)})
		require.Equal(t, p, ClampToRange(p, origin, r))
	}
}

func TestClampToRange_OutsideLandsOnCircleAlongRay(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	origin := graphics.Offset{X: 100, Y: 60}
	const r = 46
	for i := 0; i < 1000; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := r + rng.Float64()*5000
		p := origin.Add(graphics.Offset{X: dist * math.Cos(angle), Y: dist * math.Sin(angle)})

		got := ClampToRange(p, origin, r)
		require.InDelta(t, r, got.DistanceTo(origin), 1e-6)

		in := p.Sub(origin)
		out := got.Sub(origin)
		cross := in.X*out.Y - in.Y*out.X
		dot := in.X*out.X + in.Y*out.Y
		require.InDelta(t, 0, cross/(in.Distance()*out.Distance()), 1e-9, "result must be collinear with the sample")
		require.Greater(t, dot, 0.0, "result must lie on the ray, not behind the origin")
	}
}

func TestClampToRange_OnBoundaryIsProjected(t *testing.T) {
	origin := graphics.Offset{X: 10, Y: 10}
	p := graphics.Offset{X: 13, Y: 14} // distance 5
	got := ClampToRange(p, origin, 5)
	assert.InDelta(t, 13, got.X, tolerance)
	assert.InDelta(t, 14, got.Y, tolerance)
}

func TestClampToRange_RotationEquivariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	origin := graphics.Offset{X: 85, Y: 85}
	const r = 39.1
	rotate := func(p graphics.Offset, theta float64) graphics.Offset {
		d := p.Sub(origin)
		sin, cos := math.Sincos(theta)
		return origin.Add(graphics.Offset{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos})
	}
	for i := 0; i < 1000; i++ {
		p := graphics.Offset{X: rng.Float64()*400 - 100, Y: rng.Float64()*400 - 100}
		theta := rng.Float64() * 2 * math.Pi

		a := ClampToRange(rotate(p, theta), origin, r)
		b := rotate(ClampToRange(p, origin, r), theta)
		require.InDelta(t, b.X, a.X, 1e-6)
		require.InDelta(t, b.Y, a.Y, 1e-6)
	}
}

func TestClampToRange_DegenerateReturnsOrigin(t *testing.T) {
	origin := graphics.Offset{X: 3, Y: 4}
	for _, p := range []graphics.Offset{{}, origin, {X: 1000, Y: -1000}} {
		assert.Equal(t, origin, ClampToRange(p, origin, 0))
		assert.Equal(t, origin, ClampToRange(p, origin, -1))
	}
}

func TestDirection(t *testing.T) {
	g := ComputeGeometry(170, 170)

	assert.True(t, g.Direction(g.Origin).IsZero())

	down := g.Direction(g.Clamp(graphics.Offset{X: 85, Y: 200}))
	assert.InDelta(t, 0, down.X, tolerance)
	assert.InDelta(t, 1, down.Y, tolerance)
	assert.InDelta(t, math.Pi/2, down.Angle(), tolerance)
	assert.InDelta(t, 1, down.Magnitude(), tolerance)

	left := g.Direction(graphics.Offset{X: 85 - 39.1/2, Y: 85})
	assert.InDelta(t, -0.5, left.X, tolerance)
	assert.InDelta(t, math.Pi, left.Angle(), tolerance)
}

func TestDirection_ComponentsBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	g := ComputeGeometry(300, 200)
	for i := 0; i < 1000; i++ {
		p := graphics.Offset{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000}
		d := g.Direction(g.Clamp(p))
		require.GreaterOrEqual(t, d.X, -1.0)
		require.LessOrEqual(t, d.X, 1.0)
		require.GreaterOrEqual(t, d.Y, -1.0)
		require.LessOrEqual(t, d.Y, 1.0)
		require.LessOrEqual(t, d.Magnitude(), 1+1e-9)
	}
}

func TestDirection_DegenerateIsZero(t *testing.T) {
	g := ComputeGeometry(0, 0)
	assert.Equal(t, Direction{}, g.Direction(graphics.Offset{X: 5, Y: 5}))
	assert.Zero(t, Direction{}.Angle())
}
