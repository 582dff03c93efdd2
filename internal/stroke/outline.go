// Package stroke turns freehand samples into fillable outlines.
package stroke

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/mrwick1/sketchflow/internal/geometry"
)

// OutlineGenerator converts raw samples into the polygon enclosing the
// inked stroke.
type OutlineGenerator interface {
	Outline(samples []geometry.Point) []vec.Vec2
}

// DefaultSize is the stroke diameter of the default outline.
const DefaultSize = 8.0

// Outline draws a stroke of constant width with pointed end caps.
type Outline struct {
	Size float64
}

func (o Outline) Outline(samples []geometry.Point) []vec.Vec2 {
	pts := dedupe(samples)
	if len(pts) == 0 {
		return nil
	}
	r := o.Size / 2
	if r <= 0 {
		r = DefaultSize / 2
	}

	if len(pts) == 1 {
		const n = 8
		dot := make([]vec.Vec2, n)
		for i := range dot {
			a := 2 * math.Pi * float64(i) / n
			dot[i] = vec.Vec2{X: pts[0].X + r*math.Cos(a), Y: pts[0].Y + r*math.Sin(a)}
		}
		return dot
	}

	left := make([]vec.Vec2, len(pts))
	right := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		prev, next := pts[max(i-1, 0)], pts[min(i+1, len(pts)-1)]
		tx, ty := unit(next.X-prev.X, next.Y-prev.Y)
		nx, ny := -ty, tx
		left[i] = vec.Vec2{X: p.X + nx*r, Y: p.Y + ny*r}
		right[i] = vec.Vec2{X: p.X - nx*r, Y: p.Y - ny*r}
	}

	last, beforeLast := pts[len(pts)-1], pts[len(pts)-2]
	ex, ey := unit(last.X-beforeLast.X, last.Y-beforeLast.Y)
	sx, sy := unit(pts[0].X-pts[1].X, pts[0].Y-pts[1].Y)

	out := make([]vec.Vec2, 0, 2*len(pts)+2)
	out = append(out, left...)
	out = append(out, vec.Vec2{X: last.X + ex*r, Y: last.Y + ey*r})
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	out = append(out, vec.Vec2{X: pts[0].X + sx*r, Y: pts[0].Y + sy*r})
	return out
}

func dedupe(samples []geometry.Point) []geometry.Point {
	var out []geometry.Point
	for i, p := range samples {
		if i > 0 && p == samples[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func unit(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
