package rough

import "seehuhn.de/go/geom/path"

// Set types.
const (
	SetPath       = "path"       // stroked outline
	SetFillPath   = "fillPath"   // filled area
	SetFillSketch = "fillSketch" // stroked hachure lines
)

// Set is one drawable layer of a shape.
type Set struct {
	Type string
	Path *path.Data
}

// Drawable is the generated silhouette of a shape.
type Drawable struct {
	Shape   string
	Options Options
	Sets    []Set
}

// Merge joins the sets of several drawables under one shape name. The
// options of the first drawable win.
func Merge(shape string, ds ...*Drawable) *Drawable {
	out := &Drawable{Shape: shape}
	for i, d := range ds {
		if d == nil {
			continue
		}
		if i == 0 {
			out.Options = d.Options
		}
		out.Sets = append(out.Sets, d.Sets...)
	}
	return out
}
