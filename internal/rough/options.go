// Package rough generates hand-drawn looking outlines for shape-backed
// elements. Output depends only on geometry and Options, so a shape keeps
// its silhouette as long as its seed is kept.
package rough

// FillNone is the fill colour sentinel meaning "not filled".
const FillNone = "none"

// FillStyle values understood by renderers.
const (
	FillHachure = "hachure"
	FillSolid   = "solid"
)

// Options are the style-derived drawing options of one shape.
type Options struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Roughness   float64 `json:"roughness"`
	Fill        string  `json:"fill,omitempty"`
	FillStyle   string  `json:"fillStyle,omitempty"`
	Seed        int64   `json:"seed"`
}

// NewOptions builds drawing options. Fill and FillStyle are only set when
// fill is a colour.
func NewOptions(stroke, fill string, strokeWidth, roughness float64, seed int64) Options {
	o := Options{
		Stroke:      stroke,
		StrokeWidth: strokeWidth,
		Roughness:   roughness,
		Seed:        seed,
	}
	if fill != "" && fill != FillNone {
		o.Fill = fill
		o.FillStyle = FillHachure
	}
	return o
}

// Filled reports whether the shape gets a fill set.
func (o Options) Filled() bool {
	return o.Fill != "" && o.Fill != FillNone
}
