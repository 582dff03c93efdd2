package engine

import (
	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

// Hit is the topmost element under a point and the part that was struck.
type Hit struct {
	Element document.Element
	Handle  geometry.Handle
}

// HitTester holds the world-space tolerances used for picking.
type HitTester struct {
	HandleTolerance   float64
	EdgeTolerance     float64
	FreehandTolerance float64
}

var DefaultHitTester = HitTester{
	HandleTolerance:   geometry.HandleTolerance,
	EdgeTolerance:     geometry.EdgeTolerance,
	FreehandTolerance: geometry.FreehandTolerance,
}

// HitTest scans elements from last to first with the default tolerances.
func HitTest(x, y float64, elements []document.Element) (Hit, bool) {
	return DefaultHitTester.HitTest(x, y, elements)
}

// HitTest returns the last element in draw order that (x, y) strikes.
func (h HitTester) HitTest(x, y float64, elements []document.Element) (Hit, bool) {
	for i := len(elements) - 1; i >= 0; i-- {
		if handle := h.part(x, y, elements[i]); handle != geometry.HandleNone {
			return Hit{Element: elements[i], Handle: handle}, true
		}
	}
	return Hit{}, false
}

func (h HitTester) part(x, y float64, el document.Element) geometry.Handle {
	near := func(tx, ty float64, tag geometry.Handle) geometry.Handle {
		return geometry.NearPointTol(x, y, tx, ty, h.HandleTolerance, tag)
	}

	switch el.Kind {
	case document.KindLine, document.KindArrow:
		if hd := near(el.X1, el.Y1, geometry.HandleStart); hd != geometry.HandleNone {
			return hd
		}
		if hd := near(el.X2, el.Y2, geometry.HandleEnd); hd != geometry.HandleNone {
			return hd
		}
		if geometry.OnSegment(el.X1, el.Y1, el.X2, el.Y2, x, y, h.EdgeTolerance) {
			return geometry.HandleInside
		}
	case document.KindRectangle, document.KindEllipse, document.KindDiamond:
		// Handles name the stored corners, which is what ResizedBounds
		// moves; only the interior test is normalized.
		b := el.Bounds()
		corners := []struct {
			x, y float64
			tag  geometry.Handle
		}{
			{b.X1, b.Y1, geometry.HandleTopLeft},
			{b.X2, b.Y1, geometry.HandleTopRight},
			{b.X1, b.Y2, geometry.HandleBottomLeft},
			{b.X2, b.Y2, geometry.HandleBottomRight},
		}
		for _, c := range corners {
			if hd := near(c.x, c.y, c.tag); hd != geometry.HandleNone {
				return hd
			}
		}
		if b.Normalized().Contains(x, y) {
			return geometry.HandleInside
		}
	case document.KindPencil:
		for i := 0; i+1 < len(el.Points); i++ {
			a, b := el.Points[i], el.Points[i+1]
			if geometry.OnSegment(a.X, a.Y, b.X, b.Y, x, y, h.FreehandTolerance) {
				return geometry.HandleInside
			}
		}
	case document.KindText:
		if el.Bounds().Contains(x, y) {
			return geometry.HandleInside
		}
	}
	return geometry.HandleNone
}
