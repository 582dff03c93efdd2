package engine

import (
	"encoding/json"
	"testing"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/stroke"
)

func TestCompileDrawCommands(t *testing.T) {
	f := newTestFactory()
	rect := mustCreate(t, f, document.KindRectangle, 0, 0, 10, 10)
	pencil := mustCreate(t, f, document.KindPencil, 0, 0, 0, 0)
	pencil, _ = f.UpdateGeometry(pencil, 0, 0, 10, 0)
	text := mustCreate(t, f, document.KindText, 5, 5, 5, 5)
	text, _ = f.UpdateGeometry(text, 5, 5, 0, 0, document.WithText("hi"))

	cmds := CompileDrawCommands([]document.Element{rect, pencil, text}, stroke.Outline{Size: 4}, "")
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}

	if cmds[0].Op != "shape" || cmds[0].Options == nil || cmds[0].Options.Seed != rect.Seed || len(cmds[0].Sets) == 0 {
		t.Errorf("shape command = %+v", cmds[0])
	}
	free := cmds[1]
	if free.Op != "freehand" || free.Fill != pencil.Style.StrokeColor {
		t.Errorf("freehand command = %+v", free)
	}
	if free.Path[0][0] != "M" || free.Path[len(free.Path)-1][0] != "Z" {
		t.Errorf("freehand path not closed: %v", free.Path)
	}
	if cmds[2].Op != "text" || cmds[2].Text != "hi" || cmds[2].X != 5 || cmds[2].FontSize != document.DefaultFontSize {
		t.Errorf("text command = %+v", cmds[2])
	}

	hidden := CompileDrawCommands([]document.Element{rect, text}, nil, text.ID)
	if len(hidden) != 1 || hidden[0].ElementID != rect.ID {
		t.Errorf("hidden element still drawn: %+v", hidden)
	}

	if _, err := json.Marshal(cmds); err != nil {
		t.Errorf("marshal: %v", err)
	}
}

func TestCompileSelection(t *testing.T) {
	f := newTestFactory()
	rect := mustCreate(t, f, document.KindRectangle, 0, 0, 10, 10)
	if got := CompileSelection(rect, 1); len(got) != 5 || got[0].Op != "selection" {
		t.Errorf("rectangle overlay = %+v", got)
	}
	line := mustCreate(t, f, document.KindLine, 0, 0, 10, 10)
	got := CompileSelection(line, 2)
	if len(got) != 3 {
		t.Fatalf("line overlay has %d commands, want 3", len(got))
	}
	if got[0].StrokeWidth != 0.5 {
		t.Errorf("stroke width = %v, want 0.5 at scale 2", got[0].StrokeWidth)
	}
	// Handle squares are 8/scale wide, centred on the endpoint.
	if got[1].Path[0][1] != -2.0 || got[1].Path[2][1] != 2.0 {
		t.Errorf("handle path = %v", got[1].Path)
	}
}
