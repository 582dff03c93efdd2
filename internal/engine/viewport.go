package engine

import "math"

// Zoom limits.
const (
	MinScale = 0.1
	MaxScale = 20.0
)

// Viewport maps screen pixels to world units. Zoom is centred on the
// canvas, which is what the scale offset accounts for.
type Viewport struct {
	PanX, PanY    float64
	Scale         float64
	Width, Height float64
}

func NewViewport(width, height float64) Viewport {
	return Viewport{Scale: 1, Width: width, Height: height}
}

// ScaleOffset is the shift introduced by scaling around the canvas centre.
func (v Viewport) ScaleOffset() (float64, float64) {
	return (v.Width*v.scale() - v.Width) / 2, (v.Height*v.scale() - v.Height) / 2
}

// Matrix is the world-to-screen transform.
func (v Viewport) Matrix() Matrix2D {
	s := v.scale()
	ox, oy := v.ScaleOffset()
	return Translate(v.PanX*s-ox, v.PanY*s-oy).Multiply(Scale(s, s))
}

func (v Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	s := v.scale()
	ox, oy := v.ScaleOffset()
	return (sx - v.PanX*s + ox) / s, (sy - v.PanY*s + oy) / s
}

func (v Viewport) WorldToScreen(x, y float64) (float64, float64) {
	return v.Matrix().TransformPoint(x, y)
}

// ZoomBy adds delta to the scale, clamped to [MinScale, MaxScale].
func (v *Viewport) ZoomBy(delta float64) {
	v.Scale = math.Min(math.Max(v.scale()+delta, MinScale), MaxScale)
}

func (v *Viewport) PanBy(dx, dy float64) {
	v.PanX += dx
	v.PanY += dy
}

func (v *Viewport) Resize(width, height float64) {
	v.Width, v.Height = width, height
}

func (v Viewport) scale() float64 {
	if v.Scale == 0 {
		return 1
	}
	return v.Scale
}
