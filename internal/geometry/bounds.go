package geometry

import "math"

// Bounds is a pair of corners. X1/Y1 and X2/Y2 may be inverted until
// Normalized is called.
type Bounds struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Normalized returns b with X1 <= X2 and Y1 <= Y2.
func (b Bounds) Normalized() Bounds {
	return Bounds{
		X1: math.Min(b.X1, b.X2),
		Y1: math.Min(b.Y1, b.Y2),
		X2: math.Max(b.X1, b.X2),
		Y2: math.Max(b.Y1, b.Y2),
	}
}

func (b Bounds) Width() float64  { return math.Abs(b.X2 - b.X1) }
func (b Bounds) Height() float64 { return math.Abs(b.Y2 - b.Y1) }

// Contains checks if a point is inside the normalized box, edges included.
func (b Bounds) Contains(x, y float64) bool {
	n := b.Normalized()
	return x >= n.X1 && x <= n.X2 && y >= n.Y1 && y <= n.Y2
}

// Union returns the smallest normalized box containing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	n, o := b.Normalized(), other.Normalized()
	return Bounds{
		X1: math.Min(n.X1, o.X1),
		Y1: math.Min(n.Y1, o.Y1),
		X2: math.Max(n.X2, o.X2),
		Y2: math.Max(n.Y2, o.Y2),
	}
}

// Expand grows the normalized box by pad on every side.
func (b Bounds) Expand(pad float64) Bounds {
	n := b.Normalized()
	return Bounds{X1: n.X1 - pad, Y1: n.Y1 - pad, X2: n.X2 + pad, Y2: n.Y2 + pad}
}

// BoundsOf returns the box covering pts. ok is false for an empty slice.
func BoundsOf(pts []Point) (b Bounds, ok bool) {
	if len(pts) == 0 {
		return Bounds{}, false
	}
	b = Bounds{X1: pts[0].X, Y1: pts[0].Y, X2: pts[0].X, Y2: pts[0].Y}
	for _, p := range pts[1:] {
		b.X1 = math.Min(b.X1, p.X)
		b.Y1 = math.Min(b.Y1, p.Y)
		b.X2 = math.Max(b.X2, p.X)
		b.Y2 = math.Max(b.Y2, p.Y)
	}
	return b, true
}
