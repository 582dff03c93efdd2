package engine

import (
	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

// ExportPadding is the margin added around exported content.
const ExportPadding = 20.0

// ElementBounds returns the normalized box an element occupies. Pencil
// strokes use their points. ok is false for a stroke without points.
func ElementBounds(el document.Element) (geometry.Bounds, bool) {
	if el.Kind == document.KindPencil {
		return geometry.BoundsOf(el.Points)
	}
	return el.Bounds().Normalized(), true
}

// SceneBounds returns the box covering every element expanded by
// padding. ok is false when there is nothing to cover.
func SceneBounds(elements []document.Element, padding float64) (geometry.Bounds, bool) {
	var out geometry.Bounds
	found := false
	for _, el := range elements {
		b, ok := ElementBounds(el)
		if !ok {
			continue
		}
		if !found {
			out, found = b, true
			continue
		}
		out = out.Union(b)
	}
	if !found {
		return geometry.Bounds{}, false
	}
	return out.Expand(padding), true
}
