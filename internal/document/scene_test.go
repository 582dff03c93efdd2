package document

import (
	"testing"

	"github.com/mrwick1/sketchflow/internal/geometry"
)

func ids(s *Scene) []string {
	var out []string
	for _, el := range s.Elements() {
		out = append(out, el.ID)
	}
	return out
}

func TestSceneKeepsInsertionOrder(t *testing.T) {
	s := NewScene(Element{ID: "a"}, Element{ID: "b"}, Element{ID: "c"})
	s.Put(Element{ID: "b", Kind: KindText})
	if got := ids(s); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("order = %v", got)
	}
	if el, _ := s.Get("b"); el.Kind != KindText {
		t.Error("Put did not replace in place")
	}

	if !s.Delete("a") || s.Delete("a") {
		t.Error("Delete result wrong")
	}
	s.Put(Element{ID: "a"})
	if got := ids(s); got[0] != "b" || got[2] != "a" {
		t.Errorf("re-added element not on top: %v", got)
	}
}

func TestSceneCloneIsDeep(t *testing.T) {
	s := NewScene(Element{ID: "p", Kind: KindPencil, Points: []geometry.Point{{X: 1, Y: 1}}})
	c := s.Clone()

	el, _ := s.Get("p")
	el.Points[0].X = 99
	s.Put(Element{ID: "q"})

	got, _ := c.Get("p")
	if got.Points[0].X != 1 {
		t.Error("clone shares point storage")
	}
	if c.Len() != 1 {
		t.Errorf("clone length = %d, want 1", c.Len())
	}
}

func TestSceneClear(t *testing.T) {
	s := NewScene(Element{ID: "a"})
	s.Clear()
	if s.Len() != 0 || len(s.Elements()) != 0 {
		t.Error("Clear left elements")
	}
	var zero Scene
	zero.Put(Element{ID: "x"})
	if zero.Len() != 1 {
		t.Error("zero Scene is not usable")
	}
}
