// Package export renders a scene to SVG, PNG or PDF over the padded box
// that covers its content.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/path"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/engine"
	"github.com/mrwick1/sketchflow/internal/geometry"
	"github.com/mrwick1/sketchflow/internal/rough"
	"github.com/mrwick1/sketchflow/internal/stroke"
)

var (
	ErrEmptyScene    = errors.New("scene has no elements")
	ErrUnknownFormat = errors.New("unknown export format")
	ErrTooLarge      = errors.New("export too large")
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Options control every exporter.
type Options struct {
	Padding    float64
	Background string
	PixelRatio float64 // PNG only
	MaxPixels  int     // PNG only; zero means no limit
	Outline    stroke.OutlineGenerator
}

func DefaultOptions() Options {
	return Options{
		Padding:    engine.ExportPadding,
		Background: "#FFFFFF",
		PixelRatio: 1,
		MaxPixels:  64 << 20,
		Outline:    stroke.Outline{Size: stroke.DefaultSize},
	}
}

// Write renders elements in format to w.
func Write(w io.Writer, format Format, elements []document.Element, opts Options) error {
	switch format {
	case FormatSVG:
		return SVG(w, elements, opts)
	case FormatPNG:
		return PNG(w, elements, opts)
	case FormatPDF:
		return PDF(w, elements, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func bounds(elements []document.Element, opts Options) (geometry.Bounds, error) {
	b, ok := engine.SceneBounds(elements, opts.Padding)
	if !ok {
		return geometry.Bounds{}, ErrEmptyScene
	}
	return b, nil
}

// layer is one filled or stroked path of an element, resolved from the
// element's kind and style.
type layer struct {
	path        *path.Data
	fill        string
	stroke      string
	strokeWidth float64
}

func layers(el document.Element, outline stroke.OutlineGenerator) []layer {
	switch {
	case el.Kind.ShapeBacked():
		if el.Shape == nil {
			return nil
		}
		o := el.Shape.Options
		out := make([]layer, 0, len(el.Shape.Sets))
		for _, set := range el.Shape.Sets {
			switch set.Type {
			case rough.SetFillPath:
				out = append(out, layer{path: set.Path, fill: o.Fill})
			case rough.SetFillSketch:
				out = append(out, layer{path: set.Path, stroke: o.Fill, strokeWidth: o.StrokeWidth / 2})
			default:
				out = append(out, layer{path: set.Path, stroke: o.Stroke, strokeWidth: o.StrokeWidth})
			}
		}
		return out
	case el.Kind == document.KindPencil:
		return []layer{{path: stroke.Freehand(el.Points, outline), fill: el.Style.StrokeColor}}
	}
	return nil
}

// parseColor parses a CSS hex colour. ok is false for "none" and for
// anything unparsable.
func parseColor(s string) (colorful.Color, bool) {
	if s == "" || s == rough.FillNone {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
