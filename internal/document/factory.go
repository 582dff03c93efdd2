package document

import (
	"fmt"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"

	"github.com/mrwick1/sketchflow/internal/geometry"
	"github.com/mrwick1/sketchflow/internal/rough"
	"github.com/mrwick1/sketchflow/internal/typeid"
)

// Arrow head geometry.
const (
	ArrowHeadLength = 15.0
	ArrowHeadAngle  = math.Pi / 6
)

// Factory creates elements and re-derives them after edits.
type Factory struct {
	Generator rough.Generator
	Measurer  TextMeasurer
	NewID     func() string
	NewSeed   func() int64
	FontSize  float64
}

func NewFactory() *Factory {
	return &Factory{
		Generator: rough.Default,
		Measurer:  ApproxMeasurer{},
		NewID:     typeid.NewElementID,
		NewSeed:   RandomSeed,
		FontSize:  DefaultFontSize,
	}
}

// RandomSeed returns a positive seed in the int32 range.
func RandomSeed() int64 {
	return rand.Int64N(math.MaxInt32) + 1
}

type createConfig struct {
	id      string
	seed    int64
	seedSet bool
}

type CreateOption func(*createConfig)

// WithID keeps an existing identity when recreating an element.
func WithID(id string) CreateOption {
	return func(c *createConfig) { c.id = id }
}

// WithSeed keeps an existing silhouette when recreating a shape.
func WithSeed(seed int64) CreateOption {
	return func(c *createConfig) { c.seed, c.seedSet = seed, true }
}

type updateConfig struct {
	text *string
}

type UpdateOption func(*updateConfig)

func WithText(text string) UpdateOption {
	return func(c *updateConfig) { c.text = &text }
}

// Create builds a new element of kind spanning (x1,y1)-(x2,y2). Pencil
// elements start with the single point (x1,y1); text elements start
// empty.
func (f *Factory) Create(x1, y1, x2, y2 float64, kind Kind, style Style, opts ...CreateOption) (Element, error) {
	if !kind.Valid() {
		return Element{}, fmt.Errorf("create element: %w: %q", ErrUnsupportedKind, kind)
	}
	var cfg createConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = f.NewID()
	}

	el := Element{ID: cfg.id, Kind: kind, Style: style}
	switch kind {
	case KindRectangle, KindEllipse, KindDiamond, KindLine, KindArrow:
		if !cfg.seedSet {
			cfg.seed = f.NewSeed()
		}
		el.X1, el.Y1, el.X2, el.Y2 = x1, y1, x2, y2
		el.Seed = cfg.seed
		el.Shape = f.shape(el)
	case KindPencil:
		el.Points = []geometry.Point{{X: x1, Y: y1}}
	case KindText:
		el.X1, el.Y1, el.X2, el.Y2 = x1, y1, x2, y2
		el.FontSize = f.fontSize()
	}
	return el, nil
}

// UpdateGeometry re-derives el at new bounds, keeping its id, style and
// seed. Pencil elements get (x2,y2) appended instead. Text elements need
// WithText and take their far corner from the measured text.
func (f *Factory) UpdateGeometry(el Element, x1, y1, x2, y2 float64, opts ...UpdateOption) (Element, error) {
	var cfg updateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch el.Kind {
	case KindRectangle, KindEllipse, KindDiamond, KindLine, KindArrow:
		return f.Create(x1, y1, x2, y2, el.Kind, el.Style, WithID(el.ID), WithSeed(el.Seed))
	case KindPencil:
		out := el.Clone()
		out.Points = append(out.Points, geometry.Point{X: x2, Y: y2})
		return out, nil
	case KindText:
		if cfg.text == nil {
			return Element{}, fmt.Errorf("update %s: %w", el.ID, ErrMissingTextOptions)
		}
		size := el.FontSize
		if size == 0 {
			size = f.fontSize()
		}
		w, h := f.Measurer.Measure(*cfg.text, size)
		out := el
		out.X1, out.Y1 = x1, y1
		out.X2, out.Y2 = x1+w, y1+h
		out.Text = *cfg.text
		out.FontSize = size
		return out, nil
	default:
		return Element{}, fmt.Errorf("update %s: %w: %q", el.ID, ErrUnsupportedKind, el.Kind)
	}
}

// Restyle applies a new style. Shape-backed elements are regenerated with
// their existing seed.
func (f *Factory) Restyle(el Element, style Style) (Element, error) {
	if el.Kind.ShapeBacked() {
		return f.Create(el.X1, el.Y1, el.X2, el.Y2, el.Kind, style, WithID(el.ID), WithSeed(el.Seed))
	}
	if !el.Kind.Valid() {
		return Element{}, fmt.Errorf("restyle %s: %w: %q", el.ID, ErrUnsupportedKind, el.Kind)
	}
	out := el.Clone()
	out.Style = style
	return out, nil
}

func (f *Factory) fontSize() float64 {
	if f.FontSize > 0 {
		return f.FontSize
	}
	return DefaultFontSize
}

func (f *Factory) shape(el Element) *rough.Drawable {
	s := el.Style
	o := rough.NewOptions(s.StrokeColor, s.FillColor, s.StrokeWidth, s.Roughness, el.Seed)
	x1, y1, x2, y2 := el.X1, el.Y1, el.X2, el.Y2

	switch el.Kind {
	case KindRectangle:
		return f.Generator.Rectangle(x1, y1, x2-x1, y2-y1, o)
	case KindEllipse:
		return f.Generator.Ellipse((x1+x2)/2, (y1+y2)/2, math.Abs(x2-x1), math.Abs(y2-y1), o)
	case KindDiamond:
		cx, cy := (x1+x2)/2, (y1+y2)/2
		d := f.Generator.Polygon([]vec.Vec2{
			{X: cx, Y: y1}, {X: x2, Y: cy}, {X: cx, Y: y2}, {X: x1, Y: cy},
		}, o)
		d.Shape = "diamond"
		return d
	case KindLine:
		return f.Generator.Line(x1, y1, x2, y2, o)
	case KindArrow:
		shaft := f.Generator.Line(x1, y1, x2, y2, o)
		headOpts := o
		headOpts.Seed++
		headOpts.Fill, headOpts.FillStyle = "", ""
		head := f.Generator.LinearPath(ArrowHead(x1, y1, x2, y2), headOpts)
		return rough.Merge("arrow", shaft, head)
	}
	return nil
}

// ArrowHead returns the barb-tip-barb polyline of an arrow pointing from
// (x1,y1) to (x2,y2).
func ArrowHead(x1, y1, x2, y2 float64) []vec.Vec2 {
	angle := math.Atan2(y2-y1, x2-x1)
	return []vec.Vec2{
		{X: x2 - ArrowHeadLength*math.Cos(angle-ArrowHeadAngle), Y: y2 - ArrowHeadLength*math.Sin(angle-ArrowHeadAngle)},
		{X: x2, Y: y2},
		{X: x2 - ArrowHeadLength*math.Cos(angle+ArrowHeadAngle), Y: y2 - ArrowHeadLength*math.Sin(angle+ArrowHeadAngle)},
	}
}
