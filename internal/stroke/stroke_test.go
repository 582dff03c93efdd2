package stroke

import (
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/mrwick1/sketchflow/internal/geometry"
)

func TestTessellateEmpty(t *testing.T) {
	p := Tessellate(nil)
	if len(p.Cmds) != 0 || len(p.Coords) != 0 {
		t.Errorf("empty outline gave %d commands", len(p.Cmds))
	}
	if got := SVGPathData(p); got != "" {
		t.Errorf("SVGPathData = %q, want empty", got)
	}
}

func TestTessellateJoinsMidpoints(t *testing.T) {
	outline := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	p := Tessellate(outline)

	want := []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdQuadTo, path.CmdQuadTo, path.CmdClose}
	if len(p.Cmds) != len(want) {
		t.Fatalf("got %v, want %v", p.Cmds, want)
	}
	for i := range want {
		if p.Cmds[i] != want[i] {
			t.Fatalf("command %d = %v, want %v", i, p.Cmds[i], want[i])
		}
	}
	wantCoords := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 0, Y: 0}, {X: 5, Y: 0},
		{X: 10, Y: 0}, {X: 10, Y: 5},
		{X: 10, Y: 10}, {X: 5, Y: 5},
	}
	for i, c := range wantCoords {
		if p.Coords[i] != c {
			t.Errorf("coord %d = %+v, want %+v", i, p.Coords[i], c)
		}
	}

	d := SVGPathData(p)
	if d != "M 0 0 Q 0 0 5 0 Q 10 0 10 5 Q 10 10 5 5 Z" {
		t.Errorf("SVGPathData = %q", d)
	}
}

func TestFreehandStrokeIsClosed(t *testing.T) {
	samples := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	p := Freehand(samples, nil)
	if len(p.Cmds) < 3 {
		t.Fatalf("outline too short: %v", p.Cmds)
	}
	if p.Cmds[0] != path.CmdMoveTo || p.Cmds[len(p.Cmds)-1] != path.CmdClose {
		t.Errorf("path not closed: %v", p.Cmds)
	}
	if !strings.HasSuffix(SVGPathData(p), "Z") {
		t.Error("svg path not closed")
	}
	if p := Freehand(nil, nil); len(p.Cmds) != 0 {
		t.Error("no samples still drew something")
	}
}

func TestOutline(t *testing.T) {
	gen := Outline{Size: 4}

	dot := gen.Outline([]geometry.Point{{X: 5, Y: 5}, {X: 5, Y: 5}})
	if len(dot) != 8 {
		t.Fatalf("single sample gave %d points, want 8", len(dot))
	}

	line := gen.Outline([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	// left side, end cap, right side, start cap
	if len(line) != 6 {
		t.Fatalf("got %d outline points, want 6", len(line))
	}
	b, _ := geometry.BoundsOf(toPoints(line))
	if b != (geometry.Bounds{X1: -2, Y1: -2, X2: 12, Y2: 2}) {
		t.Errorf("outline bounds = %+v", b)
	}
}

func toPoints(vs []vec.Vec2) []geometry.Point {
	out := make([]geometry.Point, len(vs))
	for i, v := range vs {
		out[i] = geometry.Point{X: v.X, Y: v.Y}
	}
	return out
}
