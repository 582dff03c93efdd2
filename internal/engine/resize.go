package engine

import (
	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

// ResizedBounds moves the dragged handle of b to (x, y) and keeps the
// opposite corner fixed. The result may be inverted; callers normalize
// once the gesture ends.
func ResizedBounds(x, y float64, handle geometry.Handle, b geometry.Bounds) geometry.Bounds {
	switch handle {
	case geometry.HandleTopLeft, geometry.HandleStart:
		return geometry.Bounds{X1: x, Y1: y, X2: b.X2, Y2: b.Y2}
	case geometry.HandleTopRight:
		return geometry.Bounds{X1: b.X1, Y1: y, X2: x, Y2: b.Y2}
	case geometry.HandleBottomLeft:
		return geometry.Bounds{X1: x, Y1: b.Y1, X2: b.X2, Y2: y}
	case geometry.HandleBottomRight, geometry.HandleEnd:
		return geometry.Bounds{X1: b.X1, Y1: b.Y1, X2: x, Y2: y}
	default:
		return b
	}
}

// RequiresNormalization reports whether elements of kind are normalized
// at the end of a draw or resize.
func RequiresNormalization(kind document.Kind) bool {
	switch kind {
	case document.KindRectangle, document.KindEllipse, document.KindDiamond, document.KindLine, document.KindArrow:
		return true
	}
	return false
}

// Normalize returns the canonical bounds of el. Boxes are sorted per
// axis. Lines keep both endpoints and are flipped as a whole so that the
// start is the leftmost point, or the topmost one on a vertical line.
func Normalize(el document.Element) geometry.Bounds {
	b := el.Bounds()
	switch el.Kind {
	case document.KindLine, document.KindArrow:
		if b.X1 < b.X2 || (b.X1 == b.X2 && b.Y1 <= b.Y2) {
			return b
		}
		return geometry.Bounds{X1: b.X2, Y1: b.Y2, X2: b.X1, Y2: b.Y1}
	default:
		return b.Normalized()
	}
}
