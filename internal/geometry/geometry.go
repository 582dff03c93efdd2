// Package geometry holds the world-space primitives shared by the scene
// engine: points, bounding boxes, proximity tests and handle names.
package geometry

import "math"

// Tolerances in world units. They do not scale with zoom.
const (
	HandleTolerance   = 5.0
	EdgeTolerance     = 1.0
	FreehandTolerance = 5.0
)

// MaxCoordinate bounds the magnitude of any stored coordinate.
const MaxCoordinate = 1e9

// InRange reports whether every v is finite and within MaxCoordinate.
func InRange(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.Abs(v) > MaxCoordinate {
			return false
		}
	}
	return true
}

// Point is a world-space coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// NearPoint returns tag when (x, y) lies within HandleTolerance of
// (targetX, targetY) on both axes, and HandleNone otherwise.
func NearPoint(x, y, targetX, targetY float64, tag Handle) Handle {
	return NearPointTol(x, y, targetX, targetY, HandleTolerance, tag)
}

// NearPointTol is NearPoint with an explicit tolerance.
func NearPointTol(x, y, targetX, targetY, tolerance float64, tag Handle) Handle {
	if math.Abs(x-targetX) <= tolerance && math.Abs(y-targetY) <= tolerance {
		return tag
	}
	return HandleNone
}

// OnSegment reports whether (x, y) lies on the segment (x1,y1)-(x2,y2):
// the detour through the point may exceed the segment length by less
// than tolerance.
func OnSegment(x1, y1, x2, y2, x, y, tolerance float64) bool {
	a := Point{X: x1, Y: y1}
	b := Point{X: x2, Y: y2}
	c := Point{X: x, Y: y}
	offset := Distance(a, b) - (Distance(a, c) + Distance(b, c))
	return math.Abs(offset) < tolerance
}
