package document

import "github.com/mrwick1/sketchflow/internal/geometry"

// NewSampleScene returns a scene holding one element of every kind.
func NewSampleScene(f *Factory) (*Scene, error) {
	style := DefaultStyle()
	filled := style
	filled.FillColor = "#A5D8FF"

	scene := NewScene()
	boxes := []struct {
		kind           Kind
		style          Style
		x1, y1, x2, y2 float64
	}{
		{KindRectangle, filled, 40, 40, 200, 140},
		{KindEllipse, style, 240, 40, 400, 140},
		{KindDiamond, filled, 440, 40, 600, 160},
		{KindLine, style, 40, 200, 200, 260},
		{KindArrow, style, 240, 260, 400, 200},
	}
	for _, b := range boxes {
		el, err := f.Create(b.x1, b.y1, b.x2, b.y2, b.kind, b.style)
		if err != nil {
			return nil, err
		}
		scene.Put(el)
	}

	pencil, err := f.Create(460, 220, 460, 220, KindPencil, style)
	if err != nil {
		return nil, err
	}
	for _, p := range []geometry.Point{{X: 480, Y: 200}, {X: 510, Y: 240}, {X: 540, Y: 210}, {X: 580, Y: 250}} {
		if pencil, err = f.UpdateGeometry(pencil, 0, 0, p.X, p.Y); err != nil {
			return nil, err
		}
	}
	scene.Put(pencil)

	text, err := f.Create(40, 300, 40, 300, KindText, style)
	if err != nil {
		return nil, err
	}
	if text, err = f.UpdateGeometry(text, text.X1, text.Y1, 0, 0, WithText("Hello, sketchflow")); err != nil {
		return nil, err
	}
	scene.Put(text)
	return scene, nil
}
