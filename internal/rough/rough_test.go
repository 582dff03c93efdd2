package rough

import (
	"math"
	"reflect"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/mrwick1/sketchflow/internal/geometry"
)

func TestNewOptions(t *testing.T) {
	o := NewOptions("#000", FillNone, 2, 1, 7)
	if o.Filled() || o.Fill != "" || o.FillStyle != "" {
		t.Errorf("unfilled options carry fill: %+v", o)
	}
	o = NewOptions("#000", "#ff0000", 2, 1, 7)
	if !o.Filled() || o.Fill != "#ff0000" || o.FillStyle != FillHachure {
		t.Errorf("filled options = %+v", o)
	}
}

func TestSketchIsDeterministic(t *testing.T) {
	o := NewOptions("#000", "#abcdef", 1, 1, 42)
	shapes := map[string]func() *Drawable{
		"rectangle": func() *Drawable { return Default.Rectangle(10, 10, 40, 30, o) },
		"ellipse":   func() *Drawable { return Default.Ellipse(30, 30, 40, 20, o) },
		"line":      func() *Drawable { return Default.Line(0, 0, 100, 50, o) },
		"polygon": func() *Drawable {
			return Default.Polygon([]vec.Vec2{{X: 0, Y: 10}, {X: 10, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 20}}, o)
		},
	}
	for name, gen := range shapes {
		t.Run(name, func(t *testing.T) {
			a, b := gen(), gen()
			if !reflect.DeepEqual(a, b) {
				t.Error("same seed produced different drawables")
			}
		})
	}
}

func TestSeedChangesSilhouette(t *testing.T) {
	a := Default.Rectangle(0, 0, 100, 100, NewOptions("#000", FillNone, 1, 1, 1))
	b := Default.Rectangle(0, 0, 100, 100, NewOptions("#000", FillNone, 1, 1, 2))
	if reflect.DeepEqual(a.Sets, b.Sets) {
		t.Error("different seeds produced identical paths")
	}
}

func TestZeroRoughnessIsExact(t *testing.T) {
	d := Default.Rectangle(10, 20, 30, 40, NewOptions("#000", FillNone, 1, 0, 5))
	if len(d.Sets) != 1 || d.Sets[0].Type != SetPath {
		t.Fatalf("sets = %+v", d.Sets)
	}
	b, ok := geometry.PathBounds(d.Sets[0].Path)
	if !ok || b != (geometry.Bounds{X1: 10, Y1: 20, X2: 40, Y2: 60}) {
		t.Errorf("outline bounds = %+v", b)
	}
	var lines int
	geometry.WalkPath(d.Sets[0].Path, func(cmd path.Command, _ []vec.Vec2) {
		if cmd == path.CmdLineTo {
			lines++
		}
	})
	if lines != 4 {
		t.Errorf("got %d edges, want 4", lines)
	}
}

func TestFilledShapesGetHachure(t *testing.T) {
	d := Default.Rectangle(0, 0, 100, 100, NewOptions("#000", "#eee", 1, 0, 3))
	if len(d.Sets) != 2 || d.Sets[0].Type != SetFillSketch || d.Sets[1].Type != SetPath {
		t.Fatalf("sets = %+v", d.Sets)
	}
	b, ok := geometry.PathBounds(d.Sets[0].Path)
	if !ok {
		t.Fatal("hachure set is empty")
	}
	const eps = 1e-9
	if b.X1 < -eps || b.Y1 < -eps || b.X2 > 100+eps || b.Y2 > 100+eps {
		t.Errorf("hachure escapes the rectangle: %+v", b)
	}
}

func TestSolidFill(t *testing.T) {
	o := NewOptions("#000", "#eee", 1, 0, 3)
	o.FillStyle = FillSolid
	d := Default.Ellipse(0, 0, 20, 20, o)
	if d.Sets[0].Type != SetFillPath {
		t.Errorf("first set = %q, want %q", d.Sets[0].Type, SetFillPath)
	}
}

func TestHachureLinesOfSquare(t *testing.T) {
	square := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	lines := hachureLines(square, 2, -0.7853981633974483)
	if len(lines) == 0 {
		t.Fatal("no hachure lines")
	}
	if got := hachureLines(square[:2], 2, 0); got != nil {
		t.Errorf("degenerate polygon produced %d lines", len(got))
	}
}

func TestHachureLineCountIsBounded(t *testing.T) {
	tests := []struct {
		name string
		size float64
	}{
		{"large", 1e7},
		{"beyond float spacing", 1e20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			square := []vec.Vec2{{X: 0, Y: 0}, {X: tt.size, Y: 0}, {X: tt.size, Y: tt.size}, {X: 0, Y: tt.size}}
			lines := hachureLines(square, 6, -math.Pi/4)
			if len(lines) == 0 || len(lines) > maxHachureLines {
				t.Errorf("got %d lines, want 1..%d", len(lines), maxHachureLines)
			}
		})
	}

	d := Default.Rectangle(0, 0, 1e20, 1e20, NewOptions("#000", "#f00", 1, 1, 7))
	if len(d.Sets) != 2 {
		t.Errorf("sets = %d, want stroke and fill", len(d.Sets))
	}
}

func TestHachureSkipsNonFinitePolygon(t *testing.T) {
	poly := []vec.Vec2{{X: 0, Y: 0}, {X: math.Inf(1), Y: 0}, {X: 0, Y: math.NaN()}}
	if got := hachureLines(poly, 6, -math.Pi/4); got != nil {
		t.Errorf("got %d lines, want none", len(got))
	}
}

func TestMerge(t *testing.T) {
	o := NewOptions("#000", FillNone, 1, 0, 1)
	line := Default.Line(0, 0, 10, 0, o)
	head := Default.LinearPath([]vec.Vec2{{X: 5, Y: -3}, {X: 10, Y: 0}, {X: 5, Y: 3}}, o)
	m := Merge("arrow", line, head)
	if m.Shape != "arrow" || len(m.Sets) != 2 || m.Options != o {
		t.Errorf("Merge = %+v", m)
	}
}
