package live

import (
	"encoding/json"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/engine"
)

// Message is the envelope for every frame on the socket in either
// direction.
type Message struct {
	Type     string          `json:"type"`
	BoardID  string          `json:"boardId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	Seq      int64           `json:"seq,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client to server. Pointer coordinates are in screen pixels.
	TypePointerDown   = "pointer.down"
	TypePointerMove   = "pointer.move"
	TypePointerUp     = "pointer.up"
	TypeTextCommit    = "text.commit"
	TypeToolSet       = "tool.set"
	TypeStyleSet      = "style.set"
	TypeElementDelete = "element.delete"
	TypeUndo          = "history.undo"
	TypeRedo          = "history.redo"
	TypeClear         = "scene.clear"
	TypeWheel         = "view.wheel"
	TypeZoom          = "view.zoom"
	TypeResize        = "view.resize"
	TypeFrameRequest  = "frame.request"

	// Server to client.
	TypeWelcome = "welcome"
	TypeFrame   = "frame"
	TypeSaved   = "saved"
	TypeError   = "error"
)

type PointerPayload struct {
	X    float64     `json:"x"`
	Y    float64     `json:"y"`
	Tool engine.Tool `json:"tool,omitempty"`
}

type TextPayload struct {
	Text string `json:"text"`
}

type ToolPayload struct {
	Tool engine.Tool `json:"tool"`
}

// StylePayload sets the style for new elements, and restyles ElementID
// when it is set.
type StylePayload struct {
	Style     document.Style `json:"style"`
	ElementID string         `json:"elementId,omitempty"`
}

type ElementPayload struct {
	ElementID string `json:"elementId"`
}

type WheelPayload struct {
	DeltaX float64 `json:"deltaX"`
	DeltaY float64 `json:"deltaY"`
	Ctrl   bool    `json:"ctrl"`
}

type ZoomPayload struct {
	Delta float64 `json:"delta"`
}

type ResizePayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type WelcomePayload struct {
	ClientID string `json:"clientId"`
	BoardID  string `json:"boardId"`
}

// FramePayload is a render frame plus the editor state a client needs
// around it.
type FramePayload struct {
	engine.Frame
	Editing *EditingPayload `json:"editing,omitempty"`
}

// EditingPayload places the text editor over the element being written,
// in screen pixels.
type EditingPayload struct {
	ElementID string  `json:"elementId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	FontSize  float64 `json:"fontSize"`
	Text      string  `json:"text"`
}

type SavedPayload struct {
	Version int64 `json:"version"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newMessage(typ string, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: typ, Payload: data}, nil
}
