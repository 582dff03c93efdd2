package export

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/fonts"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

// PNG rasterizes the scene.
func PNG(w io.Writer, elements []document.Element, opts Options) error {
	b, err := bounds(elements, opts)
	if err != nil {
		return err
	}
	ratio := opts.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}

	fw, fh := math.Ceil(b.Width()*ratio), math.Ceil(b.Height()*ratio)
	if !(fw > 0 && fh > 0) || math.IsInf(fw*fh, 0) ||
		(opts.MaxPixels > 0 && fw*fh > float64(opts.MaxPixels)) {
		return fmt.Errorf("%w: %.0fx%.0f pixels", ErrTooLarge, fw, fh)
	}

	dc := gg.NewContext(int(fw), int(fh))
	if c, ok := parseColor(opts.Background); ok {
		dc.SetRGB(c.R, c.G, c.B)
		dc.Clear()
	}
	dc.Scale(ratio, ratio)
	dc.Translate(-b.X1, -b.Y1)

	for _, el := range elements {
		alpha := el.Style.Opacity
		for _, l := range layers(el, opts.Outline) {
			if c, ok := parseColor(l.fill); ok {
				tracePath(dc, l.path)
				dc.SetRGBA(c.R, c.G, c.B, alpha)
				dc.Fill()
			}
			if c, ok := parseColor(l.stroke); ok {
				tracePath(dc, l.path)
				dc.SetRGBA(c.R, c.G, c.B, alpha)
				dc.SetLineWidth(l.strokeWidth)
				dc.Stroke()
			}
		}
		if el.Kind == document.KindText && el.Text != "" {
			if err := drawText(dc, el); err != nil {
				return err
			}
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawText(dc *gg.Context, el document.Element) error {
	face, err := fonts.NewFace(el.FontSize)
	if err != nil {
		return err
	}
	c, ok := parseColor(el.Style.StrokeColor)
	if !ok {
		return nil
	}
	dc.SetFontFace(face)
	dc.SetRGBA(c.R, c.G, c.B, el.Style.Opacity)
	dc.DrawStringAnchored(el.Text, el.X1, el.Y1, 0, 1)
	return nil
}

func tracePath(dc *gg.Context, p *path.Data) {
	dc.NewSubPath()
	geometry.WalkPath(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			dc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			dc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			dc.ClosePath()
		}
	})
}
