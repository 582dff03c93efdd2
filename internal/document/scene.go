package document

import "slices"

// Scene is the ordered element set of one board. Iteration order is
// insertion order, which is also draw order.
type Scene struct {
	order    []string
	elements map[string]Element
}

func NewScene(elements ...Element) *Scene {
	s := &Scene{elements: make(map[string]Element)}
	for _, e := range elements {
		s.Put(e)
	}
	return s
}

func (s *Scene) Len() int { return len(s.order) }

func (s *Scene) Get(id string) (Element, bool) {
	e, ok := s.elements[id]
	return e, ok
}

// Put replaces the element with the same id in place, or appends it.
func (s *Scene) Put(e Element) {
	if s.elements == nil {
		s.elements = make(map[string]Element)
	}
	if _, ok := s.elements[e.ID]; !ok {
		s.order = append(s.order, e.ID)
	}
	s.elements[e.ID] = e
}

func (s *Scene) Delete(id string) bool {
	if _, ok := s.elements[id]; !ok {
		return false
	}
	delete(s.elements, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return true
}

func (s *Scene) Clear() {
	s.order = nil
	s.elements = make(map[string]Element)
}

// Elements returns the elements in draw order. The slice is a copy.
func (s *Scene) Elements() []Element {
	out := make([]Element, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.elements[id])
	}
	return out
}

// Clone returns a deep copy.
func (s *Scene) Clone() *Scene {
	c := &Scene{
		order:    slices.Clone(s.order),
		elements: make(map[string]Element, len(s.elements)),
	}
	for id, e := range s.elements {
		c.elements[id] = e.Clone()
	}
	return c
}
