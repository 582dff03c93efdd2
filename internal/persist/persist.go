// Package persist converts scenes to and from their stored JSON form.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/geometry"
)

var (
	ErrCorruptPersistedState = errors.New("corrupt persisted scene")
	ErrCoordinateRange       = errors.New("coordinate out of range")
)

// maxFontSize bounds stored text sizes.
const maxFontSize = 1000

// Record is the flat stored form of one element.
type Record struct {
	ID       string           `json:"id"`
	Type     document.Kind    `json:"type"`
	X1       float64          `json:"x1"`
	Y1       float64          `json:"y1"`
	X2       float64          `json:"x2"`
	Y2       float64          `json:"y2"`
	Style    document.Style   `json:"style"`
	Seed     *int64           `json:"seed,omitempty"`
	Points   []geometry.Point `json:"points,omitempty"`
	Text     *string          `json:"text,omitempty"`
	FontSize *float64         `json:"fontSize,omitempty"`
}

// Records flattens a scene in draw order.
func Records(scene *document.Scene) []Record {
	els := scene.Elements()
	out := make([]Record, 0, len(els))
	for _, el := range els {
		r := Record{
			ID:    el.ID,
			Type:  el.Kind,
			X1:    el.X1,
			Y1:    el.Y1,
			X2:    el.X2,
			Y2:    el.Y2,
			Style: el.Style,
		}
		switch {
		case el.Kind.ShapeBacked():
			seed := el.Seed
			r.Seed = &seed
		case el.Kind == document.KindPencil:
			r.Points = el.Points
		case el.Kind == document.KindText:
			text, size := el.Text, el.FontSize
			r.Text, r.FontSize = &text, &size
		}
		out = append(out, r)
	}
	return out
}

func Marshal(scene *document.Scene) ([]byte, error) {
	data, err := json.Marshal(Records(scene))
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

// Unmarshal rebuilds a scene. Shapes are regenerated through the factory
// with their stored seed so they render exactly as before.
func Unmarshal(data []byte, f *document.Factory) (*document.Scene, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPersistedState, err)
	}
	scene := document.NewScene()
	for i, r := range records {
		el, err := FromRecord(r, f)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptPersistedState, i, err)
		}
		if _, dup := scene.Get(el.ID); dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrCorruptPersistedState, el.ID)
		}
		scene.Put(el)
	}
	return scene, nil
}

// FromRecord rebuilds one element.
func FromRecord(r Record, f *document.Factory) (document.Element, error) {
	if r.ID == "" {
		return document.Element{}, errors.New("missing id")
	}
	kind, err := document.ParseKind(string(r.Type))
	if err != nil {
		return document.Element{}, err
	}
	if !geometry.InRange(r.X1, r.Y1, r.X2, r.Y2) {
		return document.Element{}, fmt.Errorf("%s %s: %w", kind, r.ID, ErrCoordinateRange)
	}
	for _, p := range r.Points {
		if !geometry.InRange(p.X, p.Y) {
			return document.Element{}, fmt.Errorf("%s %s: %w", kind, r.ID, ErrCoordinateRange)
		}
	}

	switch kind {
	case document.KindPencil:
		if len(r.Points) == 0 {
			return document.Element{}, fmt.Errorf("pencil %s has no points", r.ID)
		}
		return document.Element{ID: r.ID, Kind: kind, Style: r.Style, Points: r.Points}, nil
	case document.KindText:
		el := document.Element{
			ID: r.ID, Kind: kind, Style: r.Style,
			X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2,
			FontSize: document.DefaultFontSize,
		}
		if r.Text != nil {
			el.Text = *r.Text
		}
		if r.FontSize != nil && *r.FontSize > 0 {
			if *r.FontSize > maxFontSize {
				return document.Element{}, fmt.Errorf("text %s: font size %v above %v", r.ID, *r.FontSize, maxFontSize)
			}
			el.FontSize = *r.FontSize
		}
		return el, nil
	default:
		opts := []document.CreateOption{document.WithID(r.ID)}
		if r.Seed != nil {
			opts = append(opts, document.WithSeed(*r.Seed))
		}
		return f.Create(r.X1, r.Y1, r.X2, r.Y2, kind, r.Style, opts...)
	}
}

// Restore is Unmarshal that never fails: corrupt data is logged and
// replaced by an empty scene. Empty input is an empty scene.
func Restore(data []byte, f *document.Factory, logger *slog.Logger) *document.Scene {
	if len(data) == 0 {
		return document.NewScene()
	}
	scene, err := Unmarshal(data, f)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("discarding persisted scene", "error", err)
		return document.NewScene()
	}
	return scene
}
