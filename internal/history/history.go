// Package history keeps the linear undo log of a scene.
package history

import "github.com/mrwick1/sketchflow/internal/document"

// History is an ordered list of scene snapshots and a cursor into it.
// snapshots[index] always mirrors the live scene as of the last Commit or
// AmendCurrent.
type History struct {
	snapshots []*document.Scene
	index     int
}

// New seeds the log with a copy of initial.
func New(initial *document.Scene) *History {
	h := &History{}
	h.Reset(initial)
	return h
}

// Reset drops every snapshot and reseeds the log with scene.
func (h *History) Reset(scene *document.Scene) {
	if scene == nil {
		scene = document.NewScene()
	}
	h.snapshots = []*document.Scene{scene.Clone()}
	h.index = 0
}

// Commit discards the redo tail and appends a copy of scene.
func (h *History) Commit(scene *document.Scene) {
	h.snapshots = append(h.snapshots[:h.index+1], scene.Clone())
	h.index = len(h.snapshots) - 1
}

// AmendCurrent overwrites the current snapshot with a copy of scene.
func (h *History) AmendCurrent(scene *document.Scene) {
	h.snapshots[h.index] = scene.Clone()
}

// Undo steps back and returns a copy of the restored snapshot. It
// reports false at the start of the log.
func (h *History) Undo() (*document.Scene, bool) {
	if h.index == 0 {
		return nil, false
	}
	h.index--
	return h.snapshots[h.index].Clone(), true
}

// Redo steps forward. It reports false at the end of the log.
func (h *History) Redo() (*document.Scene, bool) {
	if h.index >= len(h.snapshots)-1 {
		return nil, false
	}
	h.index++
	return h.snapshots[h.index].Clone(), true
}

func (h *History) Len() int      { return len(h.snapshots) }
func (h *History) Index() int    { return h.index }
func (h *History) CanUndo() bool { return h.index > 0 }
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }
