package engine

import (
	"fmt"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

// BeginGesture starts a pointer-down at world point (x, y) with tool.
// Mutating gestures commit the pre-gesture scene first so that one undo
// reverts the whole gesture. A gesture that never ended keeps its last
// frame.
func (e *Engine) BeginGesture(x, y float64, tool Tool) error {
	if e.action == ActionWriting {
		return nil
	}
	if e.action != ActionNone {
		e.logger.Debug("gesture abandoned", "action", e.action)
		e.action = ActionNone
	}
	e.SetTool(tool)

	switch tool {
	case ToolPan:
		e.action = ActionPanning
		e.panStart = geometry.Point{X: x, Y: y}

	case ToolEraser:
		hit, ok := e.HitTest(x, y)
		if !ok {
			return nil
		}
		e.history.Commit(e.scene)
		e.scene.Delete(hit.Element.ID)
		e.history.AmendCurrent(e.scene)
		e.selected = nil

	case ToolSelection:
		hit, ok := e.HitTest(x, y)
		if !ok {
			e.selected = nil
			return nil
		}
		el := hit.Element
		sel := &selection{id: el.ID, handle: hit.Handle}
		if el.Kind == document.KindPencil {
			sel.pointOffsets = make([]geometry.Point, len(el.Points))
			for i, p := range el.Points {
				sel.pointOffsets[i] = geometry.Point{X: x - p.X, Y: y - p.Y}
			}
		} else {
			sel.offsetX, sel.offsetY = x-el.X1, y-el.Y1
		}
		e.selected = sel
		e.history.Commit(e.scene)
		if hit.Handle == geometry.HandleInside {
			e.action = ActionMoving
		} else {
			e.action = ActionResizing
		}

	default:
		kind, ok := tool.Kind()
		if !ok {
			return fmt.Errorf("begin gesture: %w: %q", ErrUnknownTool, tool)
		}
		el, err := e.factory.Create(x, y, x, y, kind, e.style)
		if err != nil {
			return fmt.Errorf("begin gesture: %w", err)
		}
		e.history.Commit(e.scene)
		e.replace(el)
		e.selected = &selection{id: el.ID}
		if kind == document.KindText {
			e.action = ActionWriting
		} else {
			e.action = ActionDrawing
		}
	}
	e.logger.Debug("gesture begin", "tool", tool, "action", e.action)
	return nil
}

// UpdateGesture handles a pointer-move at world point (x, y).
func (e *Engine) UpdateGesture(x, y float64) error {
	if e.action == ActionPanning {
		e.viewport.PanBy(x-e.panStart.X, y-e.panStart.Y)
		return nil
	}
	if e.selected == nil {
		return nil
	}
	el, ok := e.scene.Get(e.selected.id)
	if !ok {
		return nil
	}

	var (
		out document.Element
		err error
	)
	switch e.action {
	case ActionDrawing:
		out, err = e.factory.UpdateGeometry(el, el.X1, el.Y1, x, y)

	case ActionMoving:
		out, err = e.moved(el, x, y)

	case ActionResizing:
		b := ResizedBounds(x, y, e.selected.handle, el.Bounds())
		out, err = e.factory.UpdateGeometry(el, b.X1, b.Y1, b.X2, b.Y2)

	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("update gesture: %w", err)
	}
	e.replace(out)
	return nil
}

func (e *Engine) moved(el document.Element, x, y float64) (document.Element, error) {
	if el.Kind == document.KindPencil {
		out := el.Clone()
		for i := range out.Points {
			if i < len(e.selected.pointOffsets) {
				off := e.selected.pointOffsets[i]
				out.Points[i] = geometry.Point{X: x - off.X, Y: y - off.Y}
			}
		}
		return out, nil
	}
	w, h := el.X2-el.X1, el.Y2-el.Y1
	nx, ny := x-e.selected.offsetX, y-e.selected.offsetY
	if el.Kind == document.KindText {
		return e.factory.UpdateGeometry(el, nx, ny, nx+w, ny+h, document.WithText(el.Text))
	}
	return e.factory.UpdateGeometry(el, nx, ny, nx+w, ny+h)
}

// EndGesture handles the pointer-up at world point (x, y). Drawn and
// resized shapes are normalized here and nowhere else.
func (e *Engine) EndGesture(x, y float64) error {
	defer e.logger.Debug("gesture end", "action", e.action)

	if e.selected != nil {
		el, ok := e.scene.Get(e.selected.id)
		if ok && (e.action == ActionDrawing || e.action == ActionResizing) && RequiresNormalization(el.Kind) {
			b := Normalize(el)
			out, err := e.factory.UpdateGeometry(el, b.X1, b.Y1, b.X2, b.Y2)
			if err != nil {
				return fmt.Errorf("end gesture: %w", err)
			}
			e.replace(out)
		}

		if ok && el.Kind == document.KindText && e.action == ActionMoving &&
			x-e.selected.offsetX == el.X1 && y-e.selected.offsetY == el.Y1 {
			e.action = ActionWriting
			return nil
		}
	}

	if e.action == ActionWriting {
		return nil
	}

	keep := e.tool == ToolSelection && (e.action == ActionMoving || e.action == ActionResizing)
	e.action = ActionNone
	if !keep {
		e.selected = nil
	}
	return nil
}

// CommitText finishes text editing with the typed text.
func (e *Engine) CommitText(text string) error {
	if e.action != ActionWriting || e.selected == nil {
		return ErrNotWriting
	}
	id := e.selected.id
	el, ok := e.scene.Get(id)
	if !ok {
		e.action, e.selected = ActionNone, nil
		return fmt.Errorf("commit text %s: %w", id, ErrElementNotFound)
	}
	out, err := e.factory.UpdateGeometry(el, el.X1, el.Y1, 0, 0, document.WithText(text))
	if err != nil {
		return fmt.Errorf("commit text: %w", err)
	}
	e.replace(out)
	e.action = ActionNone
	e.selected = nil
	return nil
}

// Editing returns the text element being written, if any.
func (e *Engine) Editing() (document.Element, bool) {
	if e.action != ActionWriting || e.selected == nil {
		return document.Element{}, false
	}
	return e.scene.Get(e.selected.id)
}
