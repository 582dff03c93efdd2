package engine

import (
	"fmt"

	"github.com/mrwick1/sketchflow/internal/document"
)

type Tool string

const (
	ToolPan       Tool = "pan"
	ToolSelection Tool = "selection"
	ToolEraser    Tool = "eraser"
	ToolRectangle Tool = "rectangle"
	ToolEllipse   Tool = "ellipse"
	ToolDiamond   Tool = "diamond"
	ToolLine      Tool = "line"
	ToolArrow     Tool = "arrow"
	ToolPencil    Tool = "pencil"
	ToolText      Tool = "text"
)

func ParseTool(s string) (Tool, error) {
	switch t := Tool(s); t {
	case ToolPan, ToolSelection, ToolEraser,
		ToolRectangle, ToolEllipse, ToolDiamond, ToolLine, ToolArrow, ToolPencil, ToolText:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// Kind returns the element kind a drawing tool creates.
func (t Tool) Kind() (document.Kind, bool) {
	k := document.Kind(t)
	return k, k.Valid()
}

// Action is what the current gesture is doing.
type Action string

const (
	ActionNone     Action = "none"
	ActionDrawing  Action = "drawing"
	ActionMoving   Action = "moving"
	ActionResizing Action = "resizing"
	ActionPanning  Action = "panning"
	ActionWriting  Action = "writing"
)
