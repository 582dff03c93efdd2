package export

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/fonts"
	"github.com/mrwick1/sketchflow/internal/stroke"
)

// SVG writes a standalone SVG document.
func SVG(w io.Writer, elements []document.Element, opts Options) error {
	b, err := bounds(elements, opts)
	if err != nil {
		return err
	}
	width, height := num(b.Width()), num(b.Height())

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		width, height, width, height)
	if opts.Background != "" {
		fmt.Fprintf(bw, `  <rect width="%s" height="%s" fill="%s"/>`+"\n", width, height, attr(opts.Background))
	}
	fmt.Fprintf(bw, `  <g transform="translate(%s, %s)">`+"\n", num(-b.X1), num(-b.Y1))

	for _, el := range elements {
		fmt.Fprintf(bw, `    <g opacity="%s">`+"\n", num(el.Style.Opacity))
		if el.Kind == document.KindText {
			fmt.Fprintf(bw, `      <text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s" dominant-baseline="hanging">`,
				num(el.X1), num(el.Y1), attr(fonts.Family), num(el.FontSize), attr(el.Style.StrokeColor))
			xml.EscapeText(bw, []byte(el.Text))
			bw.WriteString("</text>\n")
		}
		for _, l := range layers(el, opts.Outline) {
			fill, strokeColor := "none", "none"
			if l.fill != "" {
				fill = l.fill
			}
			if l.stroke != "" {
				strokeColor = l.stroke
			}
			fmt.Fprintf(bw, `      <path d="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
				stroke.SVGPathData(l.path), attr(fill), attr(strokeColor), num(l.strokeWidth))
		}
		bw.WriteString("    </g>\n")
	}

	bw.WriteString("  </g>\n</svg>\n")
	return bw.Flush()
}

func num(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(s string) string {
	var b []byte
	for _, r := range s {
		switch r {
		case '"':
			b = append(b, "&quot;"...)
		case '&':
			b = append(b, "&amp;"...)
		case '<':
			b = append(b, "&lt;"...)
		default:
			b = append(b, string(r)...)
		}
	}
	return string(b)
}
