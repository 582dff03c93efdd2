package engine

import (
	"testing"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

func TestHitTestRectangle(t *testing.T) {
	f := newTestFactory()
	rect := mustCreate(t, f, document.KindRectangle, 10, 10, 50, 50)
	els := []document.Element{rect}

	tests := []struct {
		name string
		x, y float64
		want geometry.Handle
	}{
		{"top left corner", 15, 15, geometry.HandleTopLeft},
		{"top right corner", 50, 8, geometry.HandleTopRight},
		{"bottom left corner", 12, 48, geometry.HandleBottomLeft},
		{"bottom right corner", 50, 50, geometry.HandleBottomRight},
		{"interior", 30, 30, geometry.HandleInside},
		{"outside", 100, 100, geometry.HandleNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := HitTest(tt.x, tt.y, els)
			if tt.want == geometry.HandleNone {
				if ok {
					t.Fatalf("HitTest(%v, %v) = %+v, want no hit", tt.x, tt.y, hit.Handle)
				}
				return
			}
			if !ok || hit.Handle != tt.want || hit.Element.ID != rect.ID {
				t.Errorf("HitTest(%v, %v) = %q/%v, want %q", tt.x, tt.y, hit.Handle, ok, tt.want)
			}
		})
	}
}

func TestHitTestInvertedBoxUsesStoredCorners(t *testing.T) {
	f := newTestFactory()
	els := []document.Element{mustCreate(t, f, document.KindEllipse, 50, 50, 10, 10)}

	tests := []struct {
		name string
		x, y float64
		want geometry.Handle
	}{
		{"stored x1,y1", 50, 50, geometry.HandleTopLeft},
		{"stored x2,y2", 12, 11, geometry.HandleBottomRight},
		{"stored x2,y1", 10, 50, geometry.HandleTopRight},
		{"stored x1,y2", 50, 10, geometry.HandleBottomLeft},
		{"interior", 30, 30, geometry.HandleInside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := HitTest(tt.x, tt.y, els)
			if !ok || hit.Handle != tt.want {
				t.Errorf("HitTest(%v, %v) = %q/%v, want %q", tt.x, tt.y, hit.Handle, ok, tt.want)
			}
		})
	}
}

func TestResizeInvertedBoxMovesGrabbedCorner(t *testing.T) {
	f := newTestFactory()
	el := mustCreate(t, f, document.KindRectangle, 50, 50, 10, 10)

	hit, ok := HitTest(10, 10, []document.Element{el})
	if !ok {
		t.Fatal("corner missed")
	}
	got := ResizedBounds(0, 0, hit.Handle, el.Bounds()).Normalized()
	want := geometry.Bounds{X1: 0, Y1: 0, X2: 50, Y2: 50}
	if got != want {
		t.Errorf("handle %q resized to %+v, want %+v", hit.Handle, got, want)
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	f := newTestFactory()
	below := mustCreate(t, f, document.KindRectangle, 0, 0, 100, 100)
	above := mustCreate(t, f, document.KindDiamond, 50, 50, 150, 150)

	hit, ok := HitTest(75, 75, []document.Element{below, above})
	if !ok || hit.Element.ID != above.ID {
		t.Errorf("got %q, want later element %q", hit.Element.ID, above.ID)
	}
	hit, _ = HitTest(75, 75, []document.Element{above, below})
	if hit.Element.ID != below.ID {
		t.Errorf("got %q, want later element %q", hit.Element.ID, below.ID)
	}
}

func TestHitTestLine(t *testing.T) {
	f := newTestFactory()
	for _, kind := range []document.Kind{document.KindLine, document.KindArrow} {
		els := []document.Element{mustCreate(t, f, kind, 0, 0, 100, 0)}
		tests := []struct {
			x, y float64
			want geometry.Handle
		}{
			{0, 0, geometry.HandleStart},
			{103, 2, geometry.HandleEnd},
			{50, 0.5, geometry.HandleInside},
			{50, 20, geometry.HandleNone},
		}
		for _, tt := range tests {
			hit, _ := HitTest(tt.x, tt.y, els)
			if hit.Handle != tt.want {
				t.Errorf("%s at (%v, %v) = %q, want %q", kind, tt.x, tt.y, hit.Handle, tt.want)
			}
		}
	}
}

func TestHitTestPencil(t *testing.T) {
	f := newTestFactory()
	p := mustCreate(t, f, document.KindPencil, 0, 0, 0, 0)
	p.Points = []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	els := []document.Element{p}

	if hit, ok := HitTest(5, 1, els); !ok || hit.Handle != geometry.HandleInside {
		t.Errorf("near stroke = %q/%v, want inside", hit.Handle, ok)
	}
	if _, ok := HitTest(0, 10, els); ok {
		t.Error("point off the stroke was hit")
	}
	// No corner handles on freehand strokes.
	if hit, _ := HitTest(0, 0, els); hit.Handle != geometry.HandleInside {
		t.Errorf("stroke start = %q, want inside", hit.Handle)
	}
}

func TestHitTestText(t *testing.T) {
	f := newTestFactory()
	el := mustCreate(t, f, document.KindText, 10, 10, 10, 10)
	el, _ = f.UpdateGeometry(el, 10, 10, 0, 0, document.WithText("hello"))
	els := []document.Element{el}

	if hit, ok := HitTest(10, 10, els); !ok || hit.Handle != geometry.HandleInside {
		t.Errorf("text corner = %q/%v, want inside", hit.Handle, ok)
	}
	if hit, ok := HitTest(55, 30, els); !ok || hit.Handle != geometry.HandleInside {
		t.Errorf("text body = %q/%v", hit.Handle, ok)
	}
	if _, ok := HitTest(61, 30, els); ok {
		t.Error("hit beyond the measured width")
	}
}

func TestHitTesterTolerance(t *testing.T) {
	f := newTestFactory()
	els := []document.Element{mustCreate(t, f, document.KindRectangle, 10, 10, 50, 50)}
	wide := HitTester{HandleTolerance: 12, EdgeTolerance: 1, FreehandTolerance: 5}
	if hit, _ := wide.HitTest(20, 20, els); hit.Handle != geometry.HandleTopLeft {
		t.Errorf("wide tolerance = %q, want topLeft", hit.Handle)
	}
	if hit, _ := HitTest(20, 20, els); hit.Handle != geometry.HandleInside {
		t.Errorf("default tolerance = %q, want inside", hit.Handle)
	}
}
