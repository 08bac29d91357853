package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle of radius 1.
const kappa = 0.5522847498

// shadowSteps is the number of stacked discs used to approximate a blurred shadow.
const shadowSteps = 8

// RasterCanvas is a software Canvas backed by an *image.RGBA.
//
// Shapes are rasterized with golang.org/x/image/vector, which gives
// anti-aliased coverage for the circles the widgets draw. Only translation
// is supported as a transform.
type RasterCanvas struct {
	img    *image.RGBA
	size   Size
	offset Offset
	stack  []Offset
	z      *vector.Rasterizer
}

// NewRasterCanvas allocates a transparent canvas of the given size.
// Fractional sizes are rounded up to whole pixels.
func NewRasterCanvas(size Size) *RasterCanvas {
	w := int(math.Ceil(math.Max(size.Width, 0)))
	h := int(math.Ceil(math.Max(size.Height, 0)))
	return &RasterCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		size: size,
	}
}

// Image returns the backing image. It is updated in place by draw calls.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.offset)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.offset = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.offset = c.offset.Add(Offset{X: dx, Y: dy})
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	rect = rect.Translate(c.offset.X, c.offset.Y)
	box, ok := c.pixelBounds(rect)
	if !ok {
		return
	}
	z := c.rasterizer(box)
	dx, dy := float32(box.Min.X), float32(box.Min.Y)
	l, t := float32(rect.Left)-dx, float32(rect.Top)-dy
	r, b := float32(rect.Right)-dx, float32(rect.Bottom)-dy
	z.MoveTo(l, t)
	z.LineTo(r, t)
	z.LineTo(r, b)
	z.LineTo(l, b)
	z.ClosePath()
	if paint.Style == PaintStyleStroke && paint.StrokeWidth > 0 {
		w := float32(paint.StrokeWidth)
		z.MoveTo(l+w, t+w)
		z.LineTo(l+w, b-w)
		z.LineTo(r-w, b-w)
		z.LineTo(r-w, t+w)
		z.ClosePath()
	}
	c.fill(z, box, paint.EffectiveColor())
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	center = center.Add(c.offset)
	box, ok := c.pixelBounds(RectFromCircle(center, radius))
	if !ok {
		return
	}
	z := c.rasterizer(box)
	local := center.Sub(Offset{X: float64(box.Min.X), Y: float64(box.Min.Y)})
	circlePath(z, local, radius, false)
	if paint.Style == PaintStyleStroke && paint.StrokeWidth > 0 && paint.StrokeWidth < radius {
		circlePath(z, local, radius-paint.StrokeWidth, true)
	}
	c.fill(z, box, paint.EffectiveColor())
}

// DrawCircleShadow approximates a Gaussian shadow by stacking translucent
// discs whose radii step from the blurred extent down to the shape edge.
func (c *RasterCanvas) DrawCircleShadow(center Offset, radius float64, shadow BoxShadow) {
	base := radius + shadow.Spread
	if base <= 0 || shadow.Color.Alpha() == 0 {
		return
	}
	center = center.Add(shadow.Offset)
	extent := 3 * shadow.Sigma()
	if extent == 0 {
		c.DrawCircle(center, base, Paint{Color: shadow.Color, Alpha: 1})
		return
	}
	step := shadow.Color.Alpha() / shadowSteps
	for i := shadowSteps; i >= 1; i-- {
		r := base + extent*float64(i)/shadowSteps
		c.DrawCircle(center, r, Paint{Color: shadow.Color.WithAlpha(step), Alpha: 1})
	}
}

func (c *RasterCanvas) Size() Size {
	return c.size
}

// pixelBounds returns the integer pixel box covering rect, clipped to the image.
func (c *RasterCanvas) pixelBounds(rect Rect) (image.Rectangle, bool) {
	box := image.Rect(
		int(math.Floor(rect.Left)),
		int(math.Floor(rect.Top)),
		int(math.Ceil(rect.Right)),
		int(math.Ceil(rect.Bottom)),
	).Intersect(c.img.Bounds())
	return box, !box.Empty()
}

func (c *RasterCanvas) rasterizer(box image.Rectangle) *vector.Rasterizer {
	if c.z == nil {
		c.z = vector.NewRasterizer(box.Dx(), box.Dy())
	} else {
		c.z.Reset(box.Dx(), box.Dy())
	}
	c.z.DrawOp = draw.Over
	return c.z
}

func (c *RasterCanvas) fill(z *vector.Rasterizer, box image.Rectangle, col Color) {
	if col.Alpha() == 0 {
		return
	}
	z.Draw(c.img, box, image.NewUniform(col.NRGBA()), image.Point{})
}

// circlePath appends a closed circle made of four cubic arcs. Reverse winding
// is used to punch holes for stroked circles.
func circlePath(z *vector.Rasterizer, center Offset, radius float64, reverse bool) {
	cx, cy := float32(center.X), float32(center.Y)
	r := float32(radius)
	k := float32(kappa) * r
	if !reverse {
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}
