package engine

import (
	"encoding/json"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
	"github.com/mrwick1/sketchflow/internal/rough"
	"github.com/mrwick1/sketchflow/internal/stroke"
)

// SelectionColor is the accent used for the selection overlay.
const SelectionColor = "#0055FF"

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["Q", cx, cy, x, y],
// ["C", x1, y1, x2, y2, x, y], ["Z"].
type PathCommand []interface{}

// ShapeSet is one layer of a hand-drawn shape.
type ShapeSet struct {
	Type string        `json:"type"`
	Path []PathCommand `json:"path"`
}

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these in painter's order.
type DrawCommand struct {
	Op          string         `json:"op"` // "shape", "freehand", "text", "selection", "handle"
	ElementID   string         `json:"elementId,omitempty"`
	Kind        document.Kind  `json:"kind,omitempty"`
	Options     *rough.Options `json:"options,omitempty"`
	Sets        []ShapeSet     `json:"sets,omitempty"`
	Path        []PathCommand  `json:"path,omitempty"`
	Fill        string         `json:"fill,omitempty"`
	Stroke      string         `json:"stroke,omitempty"`
	StrokeWidth float64        `json:"strokeWidth,omitempty"`
	Dash        []float64      `json:"dash,omitempty"`
	Opacity     float64        `json:"opacity,omitempty"`
	Text        string         `json:"text,omitempty"`
	FontSize    float64        `json:"fontSize,omitempty"`
	X           float64        `json:"x,omitempty"`
	Y           float64        `json:"y,omitempty"`
}

// Frame is everything a client needs to paint one frame.
type Frame struct {
	Transform []float64     `json:"transform"`
	Commands  []DrawCommand `json:"commands"`
	Overlay   []DrawCommand `json:"overlay,omitempty"`
	Selected  string        `json:"selected,omitempty"`
	Action    Action        `json:"action"`
	Tool      Tool          `json:"tool"`
	CanUndo   bool          `json:"canUndo"`
	CanRedo   bool          `json:"canRedo"`
}

// CompileDrawCommands generates draw commands for elements in painter's
// order. The element whose id is hidden is skipped.
func CompileDrawCommands(elements []document.Element, outline stroke.OutlineGenerator, hidden string) []DrawCommand {
	commands := make([]DrawCommand, 0, len(elements))
	for _, el := range elements {
		if el.ID == hidden {
			continue
		}
		if cmd, ok := compileElement(el, outline); ok {
			commands = append(commands, cmd)
		}
	}
	return commands
}

func compileElement(el document.Element, outline stroke.OutlineGenerator) (DrawCommand, bool) {
	cmd := DrawCommand{ElementID: el.ID, Kind: el.Kind, Opacity: el.Style.Opacity}
	switch {
	case el.Kind.ShapeBacked():
		if el.Shape == nil {
			return cmd, false
		}
		cmd.Op = "shape"
		opts := el.Shape.Options
		cmd.Options = &opts
		for _, set := range el.Shape.Sets {
			cmd.Sets = append(cmd.Sets, ShapeSet{Type: set.Type, Path: PathCommands(set.Path)})
		}
	case el.Kind == document.KindPencil:
		cmd.Op = "freehand"
		cmd.Path = PathCommands(stroke.Freehand(el.Points, outline))
		cmd.Fill = el.Style.StrokeColor
	case el.Kind == document.KindText:
		cmd.Op = "text"
		cmd.Text = el.Text
		cmd.FontSize = el.FontSize
		cmd.X, cmd.Y = el.X1, el.Y1
		cmd.Fill = el.Style.StrokeColor
	default:
		return cmd, false
	}
	return cmd, true
}

// CompileSelection draws the dashed box and the handles of a selected
// element. Sizes are divided by scale so they stay constant on screen.
func CompileSelection(el document.Element, scale float64) []DrawCommand {
	b, ok := ElementBounds(el)
	if !ok {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	handle := 8 / scale
	dash := 5 / scale

	out := []DrawCommand{{
		Op:          "selection",
		ElementID:   el.ID,
		Path:        rectCommands(b.X1, b.Y1, b.X2, b.Y2),
		Stroke:      SelectionColor,
		StrokeWidth: 1 / scale,
		Dash:        []float64{dash, dash},
	}}

	var pts []geometry.Point
	switch el.Kind {
	case document.KindLine, document.KindArrow:
		pts = []geometry.Point{{X: el.X1, Y: el.Y1}, {X: el.X2, Y: el.Y2}}
	default:
		pts = []geometry.Point{{X: b.X1, Y: b.Y1}, {X: b.X2, Y: b.Y1}, {X: b.X1, Y: b.Y2}, {X: b.X2, Y: b.Y2}}
	}
	for _, p := range pts {
		out = append(out, DrawCommand{
			Op:        "handle",
			ElementID: el.ID,
			Path:      rectCommands(p.X-handle/2, p.Y-handle/2, p.X+handle/2, p.Y+handle/2),
			Fill:      SelectionColor,
		})
	}
	return out
}

// PathCommands converts a path into Canvas2D segments.
func PathCommands(p *path.Data) []PathCommand {
	var out []PathCommand
	geometry.WalkPath(p, func(cmd path.Command, pts []vec.Vec2) {
		var c PathCommand
		switch cmd {
		case path.CmdMoveTo:
			c = PathCommand{"M"}
		case path.CmdLineTo:
			c = PathCommand{"L"}
		case path.CmdQuadTo:
			c = PathCommand{"Q"}
		case path.CmdCubeTo:
			c = PathCommand{"C"}
		case path.CmdClose:
			c = PathCommand{"Z"}
		}
		for _, pt := range pts {
			c = append(c, pt.X, pt.Y)
		}
		out = append(out, c)
	})
	return out
}

func rectCommands(x1, y1, x2, y2 float64) []PathCommand {
	return []PathCommand{
		{"M", x1, y1},
		{"L", x2, y1},
		{"L", x2, y2},
		{"L", x1, y2},
		{"Z"},
	}
}

// FrameToJSON serializes a frame to JSON.
func FrameToJSON(f Frame) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "{}", err
	}
	return string(data), nil
}
