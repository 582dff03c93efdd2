package geometry

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// WalkPath calls fn for every command of p with the coordinates that
// command consumes. Close receives no coordinates.
func WalkPath(p *path.Data, fn func(cmd path.Command, pts []vec.Vec2)) {
	if p == nil {
		return
	}
	idx := 0
	for _, cmd := range p.Cmds {
		n := 0
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		}
		fn(cmd, p.Coords[idx:idx+n])
		idx += n
	}
}

// PathBounds returns the box covering every coordinate of p, control
// points included.
func PathBounds(p *path.Data) (Bounds, bool) {
	if p == nil || len(p.Coords) == 0 {
		return Bounds{}, false
	}
	pts := make([]Point, len(p.Coords))
	for i, c := range p.Coords {
		pts[i] = Point{X: c.X, Y: c.Y}
	}
	return BoundsOf(pts)
}

// Vec converts p to a path coordinate.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}
