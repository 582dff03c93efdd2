package history

import (
	"fmt"
	"testing"

	"github.com/mrwick1/sketchflow/internal/document"
)

func sceneIDs(s *document.Scene) string {
	var out string
	for _, el := range s.Elements() {
		out += el.ID
	}
	return out
}

func TestDrawUndoRedoScenario(t *testing.T) {
	live := document.NewScene()
	h := New(live)

	h.Commit(live)
	live.Put(document.Element{ID: "A"})
	h.AmendCurrent(live)

	h.Commit(live)
	live.Put(document.Element{ID: "B"})
	h.AmendCurrent(live)

	if h.Len() != 3 || h.Index() != 2 {
		t.Fatalf("len %d index %d, want 3 and 2", h.Len(), h.Index())
	}

	s, ok := h.Undo()
	if !ok || h.Index() != 1 || sceneIDs(s) != "A" {
		t.Fatalf("first undo: ok %v index %d scene %q", ok, h.Index(), sceneIDs(s))
	}
	s, ok = h.Undo()
	if !ok || h.Index() != 0 || s.Len() != 0 {
		t.Fatalf("second undo: ok %v index %d scene %q", ok, h.Index(), sceneIDs(s))
	}
	if _, ok := h.Undo(); ok || h.Index() != 0 {
		t.Error("undo past the start moved the index")
	}

	h.Redo()
	s, ok = h.Redo()
	if !ok || sceneIDs(s) != "AB" {
		t.Fatalf("redo twice: ok %v scene %q", ok, sceneIDs(s))
	}
	if _, ok := h.Redo(); ok || h.Index() != 2 {
		t.Error("redo past the end moved the index")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			live := document.NewScene(document.Element{ID: "base"})
			h := New(live)
			initial := sceneIDs(live)

			for i := 0; i < n; i++ {
				h.Commit(live)
				live.Put(document.Element{ID: fmt.Sprintf("-%d", i)})
				h.AmendCurrent(live)
			}
			final := sceneIDs(live)

			var s *document.Scene
			for i := 0; i < n; i++ {
				var ok bool
				if s, ok = h.Undo(); !ok {
					t.Fatalf("undo %d failed", i)
				}
			}
			if sceneIDs(s) != initial {
				t.Errorf("after undo got %q, want %q", sceneIDs(s), initial)
			}
			for i := 0; i < n; i++ {
				s, _ = h.Redo()
			}
			if sceneIDs(s) != final {
				t.Errorf("after redo got %q, want %q", sceneIDs(s), final)
			}
		})
	}
}

func TestAmendCurrentDoesNotGrow(t *testing.T) {
	live := document.NewScene()
	h := New(live)
	h.Commit(live)
	for i := 0; i < 50; i++ {
		live.Put(document.Element{ID: "drag", X2: float64(i)})
		h.AmendCurrent(live)
	}
	if h.Len() != 2 {
		t.Errorf("len = %d, want 2", h.Len())
	}

	s, _ := h.Undo()
	if s.Len() != 0 {
		t.Error("undo landed on a drag frame")
	}
}

func TestCommitTruncatesRedoTail(t *testing.T) {
	live := document.NewScene()
	h := New(live)
	for _, id := range []string{"a", "b", "c"} {
		h.Commit(live)
		live.Put(document.Element{ID: id})
		h.AmendCurrent(live)
	}
	live, _ = h.Undo()
	live, _ = h.Undo()

	h.Commit(live)
	live.Put(document.Element{ID: "z"})
	h.AmendCurrent(live)

	if h.Len() != 3 || h.Index() != 2 || h.CanRedo() {
		t.Errorf("len %d index %d canRedo %v", h.Len(), h.Index(), h.CanRedo())
	}
	if sceneIDs(live) != "az" {
		t.Errorf("scene = %q", sceneIDs(live))
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	live := document.NewScene()
	h := New(live)
	h.Commit(live)
	live.Put(document.Element{ID: "x"})

	s, _ := h.Undo()
	if s.Len() != 0 {
		t.Error("mutating the live scene leaked into a snapshot")
	}
	s.Put(document.Element{ID: "y"})
	again, _ := h.Redo()
	if again.Len() != 0 {
		t.Error("mutating a restored scene leaked into the log")
	}
}

func TestReset(t *testing.T) {
	live := document.NewScene()
	h := New(live)
	h.Commit(live)
	h.Commit(live)
	h.Reset(document.NewScene(document.Element{ID: "loaded"}))
	if h.Len() != 1 || h.Index() != 0 || h.CanUndo() || h.CanRedo() {
		t.Errorf("after reset len %d index %d", h.Len(), h.Index())
	}
}
