//go:build js && wasm

package main

import (
	"bytes"
	"encoding/json"
	"syscall/js"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/engine"
	"github.com/mrwick1/sketchflow/internal/export"
	"github.com/mrwick1/sketchflow/internal/fonts"
	"github.com/mrwick1/sketchflow/internal/persist"
)

var eng *engine.Engine

func main() {
	factory := document.NewFactory()
	factory.Measurer = fonts.Measurer{}
	eng = engine.New(engine.WithFactory(factory))

	api := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	api.Set("loadScene", js.FuncOf(loadScene))
	api.Set("loadSampleScene", js.FuncOf(loadSampleScene))
	api.Set("pointerDown", js.FuncOf(pointerDown))
	api.Set("pointerMove", js.FuncOf(pointerMove))
	api.Set("pointerUp", js.FuncOf(pointerUp))
	api.Set("commitText", js.FuncOf(commitText))
	api.Set("setTool", js.FuncOf(setTool))
	api.Set("setStyle", js.FuncOf(setStyle))
	api.Set("deleteElement", js.FuncOf(deleteElement))
	api.Set("undo", js.FuncOf(undo))
	api.Set("redo", js.FuncOf(redo))
	api.Set("clear", js.FuncOf(clearScene))
	api.Set("wheel", js.FuncOf(wheel))
	api.Set("resize", js.FuncOf(resize))

	// --- Queries (frontend ← engine) ---
	api.Set("render", js.FuncOf(render))
	api.Set("getScene", js.FuncOf(getScene))
	api.Set("hitTest", js.FuncOf(hitTest))
	api.Set("cursor", js.FuncOf(cursor))
	api.Set("exportSVG", js.FuncOf(exportSVG))

	js.Global().Set("sketchflowEngine", api)
	js.Global().Set("sketchflowWasmReady", js.ValueOf(true))

	select {}
}

func ok() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func fail(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func missing(what string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": "missing " + what})
}

// world converts screen pixel arguments to world coordinates.
func world(args []js.Value) (float64, float64) {
	return eng.Viewport().ScreenToWorld(args[0].Float(), args[1].Float())
}

// --- Command Handlers ---

func loadScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("scene JSON")
	}
	scene, err := persist.Unmarshal([]byte(args[0].String()), eng.Factory())
	if err != nil {
		return fail(err)
	}
	eng.Hydrate(scene)
	return ok()
}

func loadSampleScene(this js.Value, args []js.Value) interface{} {
	scene, err := document.NewSampleScene(eng.Factory())
	if err != nil {
		return fail(err)
	}
	eng.Hydrate(scene)
	return ok()
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("pointer position")
	}
	tool := eng.Tool()
	if len(args) > 2 && args[2].Type() == js.TypeString {
		t, err := engine.ParseTool(args[2].String())
		if err != nil {
			return fail(err)
		}
		tool = t
	}
	x, y := world(args)
	if err := eng.BeginGesture(x, y, tool); err != nil {
		return fail(err)
	}
	return ok()
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("pointer position")
	}
	x, y := world(args)
	if err := eng.UpdateGesture(x, y); err != nil {
		return fail(err)
	}
	return ok()
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("pointer position")
	}
	x, y := world(args)
	if err := eng.EndGesture(x, y); err != nil {
		return fail(err)
	}
	return ok()
}

func commitText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("text")
	}
	if err := eng.CommitText(args[0].String()); err != nil {
		return fail(err)
	}
	return ok()
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("tool")
	}
	t, err := engine.ParseTool(args[0].String())
	if err != nil {
		return fail(err)
	}
	eng.SetTool(t)
	return ok()
}

// setStyle(styleJSON, elementId?) sets the style for new elements and
// restyles elementId when given.
func setStyle(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("style JSON")
	}
	style := document.DefaultStyle()
	if err := json.Unmarshal([]byte(args[0].String()), &style); err != nil {
		return fail(err)
	}
	eng.SetStyle(style)
	if len(args) > 1 && args[1].Type() == js.TypeString {
		if err := eng.RestyleElement(args[1].String(), style); err != nil {
			return fail(err)
		}
	}
	return ok()
}

func deleteElement(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("element id")
	}
	if err := eng.DeleteElement(args[0].String()); err != nil {
		return fail(err)
	}
	return ok()
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Redo())
}

func clearScene(this js.Value, args []js.Value) interface{} {
	eng.Clear()
	return ok()
}

// wheel(deltaX, deltaY, ctrlKey) pans, or zooms with ctrl held.
func wheel(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return missing("wheel deltas")
	}
	if args[2].Bool() {
		eng.ZoomBy(args[1].Float() * -0.01)
	} else {
		eng.PanBy(-args[0].Float(), -args[1].Float())
	}
	return ok()
}

func resize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("canvas size")
	}
	eng.ResizeCanvas(args[0].Float(), args[1].Float())
	return ok()
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	out, err := engine.FrameToJSON(eng.Render())
	if err != nil {
		return fail(err)
	}
	return js.ValueOf(out)
}

func getScene(this js.Value, args []js.Value) interface{} {
	data, err := persist.Marshal(eng.Snapshot())
	if err != nil {
		return fail(err)
	}
	return js.ValueOf(string(data))
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	hit, found := eng.HitTest(world(args))
	if !found {
		return nil
	}
	return js.ValueOf(map[string]interface{}{
		"id":     hit.Element.ID,
		"handle": string(hit.Handle),
	})
}

func cursor(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("default")
	}
	return js.ValueOf(string(eng.Cursor(world(args))))
}

func exportSVG(this js.Value, args []js.Value) interface{} {
	var buf bytes.Buffer
	if err := export.SVG(&buf, eng.Elements(), export.DefaultOptions()); err != nil {
		return fail(err)
	}
	return js.ValueOf(buf.String())
}
