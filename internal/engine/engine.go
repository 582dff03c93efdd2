package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
	"github.com/mrwick1/sketchflow/internal/history"
	"github.com/mrwick1/sketchflow/internal/stroke"
)

var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrElementNotFound = errors.New("element not found")
	ErrNotWriting      = errors.New("no text element is being edited")
)

// Engine owns one board: its scene, the undo log and the state of the
// gesture in progress. It is not safe for concurrent use; callers
// serialize access.
type Engine struct {
	scene   *document.Scene
	history *history.History
	factory *document.Factory
	outline stroke.OutlineGenerator
	hits    HitTester
	logger  *slog.Logger

	viewport Viewport
	tool     Tool
	style    document.Style

	action   Action
	selected *selection
	panStart geometry.Point
}

// selection is the element under manipulation and where it was grabbed.
type selection struct {
	id           string
	handle       geometry.Handle
	offsetX      float64
	offsetY      float64
	pointOffsets []geometry.Point
}

type Option func(*Engine)

func WithFactory(f *document.Factory) Option {
	return func(e *Engine) { e.factory = f }
}

func WithOutline(g stroke.OutlineGenerator) Option {
	return func(e *Engine) { e.outline = g }
}

func WithHitTester(h HitTester) Option {
	return func(e *Engine) { e.hits = h }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func WithViewport(v Viewport) Option {
	return func(e *Engine) { e.viewport = v }
}

// New creates an engine over an empty scene.
func New(opts ...Option) *Engine {
	e := &Engine{
		scene:    document.NewScene(),
		factory:  document.NewFactory(),
		outline:  stroke.Outline{Size: stroke.DefaultSize},
		hits:     DefaultHitTester,
		logger:   slog.Default(),
		viewport: NewViewport(0, 0),
		tool:     ToolSelection,
		style:    document.DefaultStyle(),
		action:   ActionNone,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history = history.New(e.scene)
	return e
}

// --- Scene ownership ---

// Elements returns the elements in draw order.
func (e *Engine) Elements() []document.Element {
	return e.scene.Elements()
}

// Snapshot returns a deep copy of the scene.
func (e *Engine) Snapshot() *document.Scene {
	return e.scene.Clone()
}

func (e *Engine) Element(id string) (document.Element, bool) {
	return e.scene.Get(id)
}

func (e *Engine) Factory() *document.Factory { return e.factory }

// Hydrate replaces the scene wholesale and restarts the undo log.
func (e *Engine) Hydrate(scene *document.Scene) {
	if scene == nil {
		scene = document.NewScene()
	}
	e.scene = scene.Clone()
	e.history.Reset(e.scene)
	e.action = ActionNone
	e.selected = nil
	e.logger.Debug("scene hydrated", "elements", e.scene.Len())
}

// Clear removes every element as one undoable step.
func (e *Engine) Clear() {
	e.history.Commit(e.scene)
	e.scene.Clear()
	e.history.AmendCurrent(e.scene)
	e.selected = nil
	e.action = ActionNone
}

func (e *Engine) Undo() bool {
	s, ok := e.history.Undo()
	if ok {
		e.restore(s)
	}
	return ok
}

func (e *Engine) Redo() bool {
	s, ok := e.history.Redo()
	if ok {
		e.restore(s)
	}
	return ok
}

func (e *Engine) CanUndo() bool { return e.history.CanUndo() }
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

// HistoryState reports the undo log length and position.
func (e *Engine) HistoryState() (length, index int) {
	return e.history.Len(), e.history.Index()
}

func (e *Engine) restore(s *document.Scene) {
	e.scene = s
	e.action = ActionNone
	if e.selected != nil {
		if _, ok := e.scene.Get(e.selected.id); !ok {
			e.selected = nil
		}
	}
}

// replace writes el into the scene and folds it into the current
// history step.
func (e *Engine) replace(el document.Element) {
	e.scene.Put(el)
	e.history.AmendCurrent(e.scene)
}

// --- Tools and style ---

func (e *Engine) Tool() Tool { return e.tool }

func (e *Engine) SetTool(t Tool) {
	if t != e.tool {
		e.selected = nil
	}
	e.tool = t
}

func (e *Engine) Style() document.Style { return e.style }

// SetStyle sets the style used for new elements.
func (e *Engine) SetStyle(s document.Style) { e.style = s }

// RestyleElement applies s to an existing element as one undoable step.
func (e *Engine) RestyleElement(id string, s document.Style) error {
	el, ok := e.scene.Get(id)
	if !ok {
		return fmt.Errorf("restyle %s: %w", id, ErrElementNotFound)
	}
	out, err := e.factory.Restyle(el, s)
	if err != nil {
		return err
	}
	e.history.Commit(e.scene)
	e.replace(out)
	return nil
}

// DeleteElement removes one element as one undoable step.
func (e *Engine) DeleteElement(id string) error {
	if _, ok := e.scene.Get(id); !ok {
		return fmt.Errorf("delete %s: %w", id, ErrElementNotFound)
	}
	e.history.Commit(e.scene)
	e.scene.Delete(id)
	e.history.AmendCurrent(e.scene)
	if e.selected != nil && e.selected.id == id {
		e.selected = nil
	}
	return nil
}

func (e *Engine) Action() Action { return e.action }

// Selected returns the id of the selected element.
func (e *Engine) Selected() (string, bool) {
	if e.selected == nil {
		return "", false
	}
	return e.selected.id, true
}

// --- Viewport ---

func (e *Engine) Viewport() Viewport { return e.viewport }

func (e *Engine) ZoomBy(delta float64)               { e.viewport.ZoomBy(delta) }
func (e *Engine) PanBy(dx, dy float64)               { e.viewport.PanBy(dx, dy) }
func (e *Engine) ResizeCanvas(width, height float64) { e.viewport.Resize(width, height) }

// --- Queries ---

// HitTest picks the topmost element at a world point.
func (e *Engine) HitTest(x, y float64) (Hit, bool) {
	return e.hits.HitTest(x, y, e.scene.Elements())
}

// Bounds returns the padded box covering the scene.
func (e *Engine) Bounds(padding float64) (geometry.Bounds, bool) {
	return SceneBounds(e.scene.Elements(), padding)
}

// Cursor returns the cursor to show when hovering a world point.
func (e *Engine) Cursor(x, y float64) geometry.Cursor {
	switch e.tool {
	case ToolPan:
		if e.action == ActionPanning {
			return geometry.CursorGrabbing
		}
		return geometry.CursorGrab
	case ToolSelection:
		if hit, ok := e.HitTest(x, y); ok {
			return geometry.CursorForHandle(hit.Handle)
		}
		return geometry.CursorDefault
	case ToolEraser:
		if _, ok := e.HitTest(x, y); ok {
			return geometry.CursorPointer
		}
		return geometry.CursorDefault
	case ToolText:
		return geometry.CursorText
	default:
		return geometry.CursorCrosshair
	}
}

// Render compiles the current frame. The element being written is left
// out so the text editor can sit in its place.
func (e *Engine) Render() Frame {
	f := Frame{
		Transform: e.viewport.Matrix().ToSlice(),
		Action:    e.action,
		Tool:      e.tool,
		CanUndo:   e.CanUndo(),
		CanRedo:   e.CanRedo(),
	}
	var hidden string
	if e.selected != nil {
		f.Selected = e.selected.id
		if e.action == ActionWriting {
			hidden = e.selected.id
		} else if el, ok := e.scene.Get(e.selected.id); ok && e.tool == ToolSelection {
			f.Overlay = CompileSelection(el, e.viewport.scale())
		}
	}
	f.Commands = CompileDrawCommands(e.scene.Elements(), e.outline, hidden)
	return f
}
