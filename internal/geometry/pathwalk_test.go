package geometry

import (
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestWalkPath(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		QuadTo(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10}).
		CubeTo(vec.Vec2{X: -5, Y: 5}, vec.Vec2{X: -5, Y: 2}, vec.Vec2{X: 0, Y: 0}).
		Close()

	var cmds []path.Command
	var counts []int
	WalkPath(p, func(cmd path.Command, pts []vec.Vec2) {
		cmds = append(cmds, cmd)
		counts = append(counts, len(pts))
	})
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose}
	wantCounts := []int{1, 1, 2, 3, 0}
	if len(cmds) != len(wantCmds) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(wantCmds))
	}
	for i := range cmds {
		if cmds[i] != wantCmds[i] || counts[i] != wantCounts[i] {
			t.Errorf("command %d = %v/%d, want %v/%d", i, cmds[i], counts[i], wantCmds[i], wantCounts[i])
		}
	}

	b, ok := PathBounds(p)
	if !ok || b != (Bounds{X1: -5, Y1: 0, X2: 10, Y2: 10}) {
		t.Errorf("PathBounds = %+v, %v", b, ok)
	}
}

func TestWalkPathNil(t *testing.T) {
	WalkPath(nil, func(path.Command, []vec.Vec2) { t.Fatal("callback on nil path") })
	if _, ok := PathBounds(&path.Data{}); ok {
		t.Error("empty path has bounds")
	}
}
