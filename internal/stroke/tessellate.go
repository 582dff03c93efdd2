package stroke

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/mrwick1/sketchflow/internal/geometry"
)

// Tessellate joins the outline points with quadratic segments through
// the midpoints of consecutive points, wrapping from last to first. An
// empty outline yields an empty path.
func Tessellate(outline []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(outline) == 0 {
		return p
	}
	p.MoveTo(outline[0])
	for i, pt := range outline {
		next := outline[(i+1)%len(outline)]
		p.QuadTo(pt, vec.Vec2{X: (pt.X + next.X) / 2, Y: (pt.Y + next.Y) / 2})
	}
	return p.Close()
}

// Freehand outlines the samples with gen and tessellates the result.
func Freehand(samples []geometry.Point, gen OutlineGenerator) *path.Data {
	if gen == nil {
		gen = Outline{Size: DefaultSize}
	}
	return Tessellate(gen.Outline(samples))
}

// SVGPathData renders p as an SVG path "d" attribute.
func SVGPathData(p *path.Data) string {
	var b strings.Builder
	geometry.WalkPath(p, func(cmd path.Command, pts []vec.Vec2) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
		case path.CmdLineTo:
			b.WriteByte('L')
		case path.CmdQuadTo:
			b.WriteByte('Q')
		case path.CmdCubeTo:
			b.WriteByte('C')
		case path.CmdClose:
			b.WriteByte('Z')
		}
		for _, pt := range pts {
			b.WriteByte(' ')
			b.WriteString(formatCoord(pt.X))
			b.WriteByte(' ')
			b.WriteString(formatCoord(pt.Y))
		}
	})
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
