package engine

import (
	"testing"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

func TestSceneBoundsEmpty(t *testing.T) {
	if _, ok := SceneBounds(nil, ExportPadding); ok {
		t.Error("empty scene reported bounds")
	}
	if _, ok := SceneBounds([]document.Element{{ID: "p", Kind: document.KindPencil}}, ExportPadding); ok {
		t.Error("pointless stroke reported bounds")
	}
}

func TestSceneBounds(t *testing.T) {
	f := newTestFactory()
	rect := mustCreate(t, f, document.KindRectangle, 50, 60, 10, 20)
	pencil := mustCreate(t, f, document.KindPencil, 100, 100, 0, 0)
	pencil, _ = f.UpdateGeometry(pencil, 0, 0, 120, 140)
	text := mustCreate(t, f, document.KindText, -30, 0, -30, 0)
	text, _ = f.UpdateGeometry(text, -30, 0, 0, 0, document.WithText("ab"))

	got, ok := SceneBounds([]document.Element{rect, pencil, text}, ExportPadding)
	want := geometry.Bounds{X1: -50, Y1: -20, X2: 140, Y2: 160}
	if !ok || got != want {
		t.Errorf("SceneBounds = %+v, %v; want %+v", got, ok, want)
	}
}

func TestElementBoundsPencilIgnoresBoxFields(t *testing.T) {
	el := document.Element{Kind: document.KindPencil, Points: []geometry.Point{{X: 5, Y: 5}, {X: 7, Y: 1}}}
	b, ok := ElementBounds(el)
	if !ok || b != (geometry.Bounds{X1: 5, Y1: 1, X2: 7, Y2: 5}) {
		t.Errorf("ElementBounds = %+v", b)
	}
}
