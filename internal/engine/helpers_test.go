package engine

import (
	"fmt"
	"testing"

	"github.com/mrwick1/sketchflow/internal/document"
)

type fixedMeasurer struct{}

func (fixedMeasurer) Measure(text string, fontSize float64) (float64, float64) {
	return float64(len(text)) * 10, fontSize
}

func newTestFactory() *document.Factory {
	f := document.NewFactory()
	f.Measurer = fixedMeasurer{}
	n := 0
	f.NewID = func() string {
		n++
		return fmt.Sprintf("el-%d", n)
	}
	return f
}

func mustCreate(t *testing.T, f *document.Factory, kind document.Kind, x1, y1, x2, y2 float64) document.Element {
	t.Helper()
	el, err := f.Create(x1, y1, x2, y2, kind, document.DefaultStyle())
	if err != nil {
		t.Fatalf("Create(%s): %v", kind, err)
	}
	return el
}
