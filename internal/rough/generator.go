package rough

import (
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Generator produces shape silhouettes.
type Generator interface {
	Rectangle(x, y, w, h float64, o Options) *Drawable
	Ellipse(cx, cy, w, h float64, o Options) *Drawable
	Polygon(pts []vec.Vec2, o Options) *Drawable
	Line(x1, y1, x2, y2 float64, o Options) *Drawable
	LinearPath(pts []vec.Vec2, o Options) *Drawable
}

// Default is the generator used when none is configured.
var Default Generator = Sketch{MaxOffset: 2, HachureGap: 6}

// Sketch draws every edge twice with seeded jitter scaled by roughness.
// Roughness 0 yields exact geometry drawn once.
type Sketch struct {
	MaxOffset  float64
	HachureGap float64
}

// Bezier approximation constant for ellipses.
const kappa = 0.5522847498

func (s Sketch) Rectangle(x, y, w, h float64, o Options) *Drawable {
	pts := []vec.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	d := s.Polygon(pts, o)
	d.Shape = "rectangle"
	return d
}

func (s Sketch) Ellipse(cx, cy, w, h float64, o Options) *Drawable {
	rng := newRand(o.Seed)
	d := &Drawable{Shape: "ellipse", Options: o}
	rx, ry := w/2, h/2

	if o.Filled() {
		outline := ellipsePolygon(cx, cy, rx, ry, 32)
		d.Sets = append(d.Sets, s.fill(outline, o, rng)...)
	}

	stroke := &path.Data{}
	for pass := 0; pass < s.passes(o); pass++ {
		j := func() float64 { return s.jitter(rng, o, math.Max(rx, ry)) }
		kx, ky := rx*kappa, ry*kappa
		stroke.MoveTo(vec.Vec2{X: cx + j(), Y: cy - ry + j()})
		stroke.CubeTo(
			vec.Vec2{X: cx + kx + j(), Y: cy - ry + j()},
			vec.Vec2{X: cx + rx + j(), Y: cy - ky + j()},
			vec.Vec2{X: cx + rx + j(), Y: cy + j()})
		stroke.CubeTo(
			vec.Vec2{X: cx + rx + j(), Y: cy + ky + j()},
			vec.Vec2{X: cx + kx + j(), Y: cy + ry + j()},
			vec.Vec2{X: cx + j(), Y: cy + ry + j()})
		stroke.CubeTo(
			vec.Vec2{X: cx - kx + j(), Y: cy + ry + j()},
			vec.Vec2{X: cx - rx + j(), Y: cy + ky + j()},
			vec.Vec2{X: cx - rx + j(), Y: cy + j()})
		stroke.CubeTo(
			vec.Vec2{X: cx - rx + j(), Y: cy - ky + j()},
			vec.Vec2{X: cx - kx + j(), Y: cy - ry + j()},
			vec.Vec2{X: cx + j(), Y: cy - ry + j()})
		if pass == 0 && s.passes(o) == 1 {
			stroke.Close()
		}
	}
	d.Sets = append(d.Sets, Set{Type: SetPath, Path: stroke})
	return d
}

func (s Sketch) Polygon(pts []vec.Vec2, o Options) *Drawable {
	rng := newRand(o.Seed)
	d := &Drawable{Shape: "polygon", Options: o}
	if len(pts) == 0 {
		return d
	}
	if o.Filled() {
		d.Sets = append(d.Sets, s.fill(pts, o, rng)...)
	}
	stroke := &path.Data{}
	for i := range pts {
		s.edge(stroke, pts[i], pts[(i+1)%len(pts)], o, rng)
	}
	d.Sets = append(d.Sets, Set{Type: SetPath, Path: stroke})
	return d
}

func (s Sketch) Line(x1, y1, x2, y2 float64, o Options) *Drawable {
	rng := newRand(o.Seed)
	stroke := &path.Data{}
	s.edge(stroke, vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, o, rng)
	return &Drawable{Shape: "line", Options: o, Sets: []Set{{Type: SetPath, Path: stroke}}}
}

func (s Sketch) LinearPath(pts []vec.Vec2, o Options) *Drawable {
	rng := newRand(o.Seed)
	stroke := &path.Data{}
	for i := 0; i+1 < len(pts); i++ {
		s.edge(stroke, pts[i], pts[i+1], o, rng)
	}
	return &Drawable{Shape: "linearPath", Options: o, Sets: []Set{{Type: SetPath, Path: stroke}}}
}

func (s Sketch) passes(o Options) int {
	if o.Roughness <= 0 {
		return 1
	}
	return 2
}

func (s Sketch) jitter(rng *rand.Rand, o Options, length float64) float64 {
	if o.Roughness <= 0 {
		return 0
	}
	amp := o.Roughness * math.Min(s.MaxOffset, length/10)
	return (rng.Float64()*2 - 1) * amp
}

// edge appends a (possibly bowed and doubled) stroke from a to b.
func (s Sketch) edge(p *path.Data, a, b vec.Vec2, o Options, rng *rand.Rand) {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if o.Roughness <= 0 {
		p.MoveTo(a).LineTo(b)
		return
	}
	for pass := 0; pass < 2; pass++ {
		j := func() float64 { return s.jitter(rng, o, length) }
		start := vec.Vec2{X: a.X + j(), Y: a.Y + j()}
		end := vec.Vec2{X: b.X + j(), Y: b.Y + j()}
		c1 := vec.Vec2{X: a.X + (b.X-a.X)/3 + j(), Y: a.Y + (b.Y-a.Y)/3 + j()}
		c2 := vec.Vec2{X: a.X + 2*(b.X-a.X)/3 + j(), Y: a.Y + 2*(b.Y-a.Y)/3 + j()}
		p.MoveTo(start).CubeTo(c1, c2, end)
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func ellipsePolygon(cx, cy, rx, ry float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}
