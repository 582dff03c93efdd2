package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

// PDF writes a single page sized to the scene, one point per world unit.
func PDF(w io.Writer, elements []document.Element, opts Options) error {
	b, err := bounds(elements, opts)
	if err != nil {
		return err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: b.Width(), Ht: b.Height()},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if c, ok := parseColor(opts.Background); ok {
		r, g, bl := c.RGB255()
		pdf.SetFillColor(int(r), int(g), int(bl))
		pdf.Rect(0, 0, b.Width(), b.Height(), "F")
	}

	ox, oy := -b.X1, -b.Y1
	for _, el := range elements {
		pdf.SetAlpha(el.Style.Opacity, "Normal")
		for _, l := range layers(el, opts.Outline) {
			if c, ok := parseColor(l.fill); ok {
				r, g, bl := c.RGB255()
				pdf.SetFillColor(int(r), int(g), int(bl))
				tracePDF(pdf, l.path, ox, oy)
				pdf.DrawPath("F")
			}
			if c, ok := parseColor(l.stroke); ok {
				r, g, bl := c.RGB255()
				pdf.SetDrawColor(int(r), int(g), int(bl))
				pdf.SetLineWidth(l.strokeWidth)
				tracePDF(pdf, l.path, ox, oy)
				pdf.DrawPath("D")
			}
		}
		if el.Kind == document.KindText && el.Text != "" {
			if c, ok := parseColor(el.Style.StrokeColor); ok {
				r, g, bl := c.RGB255()
				pdf.SetTextColor(int(r), int(g), int(bl))
			}
			pdf.SetFont("Helvetica", "", el.FontSize)
			pdf.Text(el.X1+ox, el.Y1+oy+el.FontSize*0.8, el.Text)
		}
	}
	pdf.SetAlpha(1, "Normal")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func tracePDF(pdf *gofpdf.Fpdf, p *path.Data, ox, oy float64) {
	geometry.WalkPath(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			pdf.MoveTo(pts[0].X+ox, pts[0].Y+oy)
		case path.CmdLineTo:
			pdf.LineTo(pts[0].X+ox, pts[0].Y+oy)
		case path.CmdQuadTo:
			pdf.CurveTo(pts[0].X+ox, pts[0].Y+oy, pts[1].X+ox, pts[1].Y+oy)
		case path.CmdCubeTo:
			pdf.CurveBezierCubicTo(pts[0].X+ox, pts[0].Y+oy, pts[1].X+ox, pts[1].Y+oy, pts[2].X+ox, pts[2].Y+oy)
		case path.CmdClose:
			pdf.ClosePath()
		}
	})
}
