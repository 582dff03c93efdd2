package rough

import (
	"math"
	"math/rand/v2"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// fill returns the fill sets for a closed outline: the area itself and,
// for the hachure style, 45 degree strokes clipped to it.
func (s Sketch) fill(outline []vec.Vec2, o Options, rng *rand.Rand) []Set {
	area := &path.Data{}
	area.MoveTo(outline[0])
	for _, p := range outline[1:] {
		area.LineTo(p)
	}
	area.Close()
	if o.FillStyle != FillHachure {
		return []Set{{Type: SetFillPath, Path: area}}
	}

	gap := s.HachureGap
	if o.StrokeWidth > 0 {
		gap = math.Max(gap, 4*o.StrokeWidth)
	}
	sketch := &path.Data{}
	for _, seg := range hachureLines(outline, gap, -math.Pi/4) {
		s.edge(sketch, seg[0], seg[1], o, rng)
	}
	return []Set{{Type: SetFillSketch, Path: sketch}}
}

// maxHachureLines bounds the scanlines of one fill. Larger shapes get a
// wider gap.
const maxHachureLines = 2000

// hachureLines intersects parallel lines at the given angle with the
// polygon. Each scanline contributes the spans between pairs of edge
// crossings.
func hachureLines(poly []vec.Vec2, gap, angle float64) [][2]vec.Vec2 {
	if len(poly) < 3 || gap <= 0 {
		return nil
	}
	sin, cos := math.Sincos(angle)
	rotate := func(p vec.Vec2, s float64) vec.Vec2 {
		return vec.Vec2{X: p.X*cos - p.Y*s, Y: p.X*s + p.Y*cos}
	}
	rot := make([]vec.Vec2, len(poly))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range poly {
		rot[i] = rotate(p, sin)
		minY = math.Min(minY, rot[i].Y)
		maxY = math.Max(maxY, rot[i].Y)
	}

	span := maxY - minY
	if math.IsNaN(span) || math.IsInf(span, 0) || span <= 0 {
		return nil
	}
	n := int(math.Ceil(span / gap))
	if n > maxHachureLines {
		n = maxHachureLines
		gap = span / float64(n)
	}

	var lines [][2]vec.Vec2
	for k := 0; k < n; k++ {
		y := minY + gap/2 + float64(k)*gap
		if y >= maxY {
			break
		}
		var xs []float64
		for i := range rot {
			a, b := rot[i], rot[(i+1)%len(rot)]
			if (a.Y <= y) == (b.Y <= y) {
				continue
			}
			t := (y - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			p := rotate(vec.Vec2{X: xs[i], Y: y}, -sin)
			q := rotate(vec.Vec2{X: xs[i+1], Y: y}, -sin)
			lines = append(lines, [2]vec.Vec2{p, q})
		}
	}
	return lines
}
