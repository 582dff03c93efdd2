package document

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mrwick1/sketchflow/internal/geometry"
	"github.com/mrwick1/sketchflow/internal/rough"
)

var (
	ErrUnsupportedKind    = errors.New("unsupported element kind")
	ErrMissingTextOptions = errors.New("text update requires text")
)

type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindDiamond   Kind = "diamond"
	KindLine      Kind = "line"
	KindArrow     Kind = "arrow"
	KindPencil    Kind = "pencil"
	KindText      Kind = "text"
)

// Kinds lists every element kind in toolbar order.
var Kinds = []Kind{KindRectangle, KindEllipse, KindDiamond, KindLine, KindArrow, KindPencil, KindText}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
	return k, nil
}

func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// ShapeBacked reports whether elements of this kind carry a generated
// silhouette and a seed.
func (k Kind) ShapeBacked() bool {
	switch k {
	case KindRectangle, KindEllipse, KindDiamond, KindLine, KindArrow:
		return true
	}
	return false
}

const DefaultFontSize = 24

type Style struct {
	StrokeColor string  `json:"strokeColor"`
	FillColor   string  `json:"fillColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	Opacity     float64 `json:"opacity"`
	Roughness   float64 `json:"roughness"`
}

func DefaultStyle() Style {
	return Style{
		StrokeColor: "#1A1A1A",
		FillColor:   rough.FillNone,
		StrokeWidth: 1,
		Opacity:     1,
		Roughness:   1,
	}
}

// Filled reports whether the fill colour is set.
func (s Style) Filled() bool {
	return s.FillColor != "" && s.FillColor != rough.FillNone
}

// Element is one item on the canvas. Which of the variant fields are
// meaningful depends on Kind:
//
//	shape-backed kinds  X1..Y2, Seed, Shape
//	pencil              Points (bounds stay zero)
//	text                X1..Y2, Text, FontSize
//
// Elements are values. Updates produce a new Element.
type Element struct {
	ID    string
	Kind  Kind
	Style Style

	X1, Y1, X2, Y2 float64

	Seed  int64
	Shape *rough.Drawable

	Points []geometry.Point

	Text     string
	FontSize float64
}

func (e Element) Bounds() geometry.Bounds {
	return geometry.Bounds{X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2}
}

// Clone returns a copy that shares no slices with e. The shape
// descriptor is treated as immutable and shared.
func (e Element) Clone() Element {
	c := e
	if e.Points != nil {
		c.Points = slices.Clone(e.Points)
	}
	return c
}
