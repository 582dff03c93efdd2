package geometry

// Handle names the part of an element struck by the pointer.
type Handle string

const (
	HandleNone        Handle = ""
	HandleTopLeft     Handle = "topLeft"
	HandleTopRight    Handle = "topRight"
	HandleBottomLeft  Handle = "bottomLeft"
	HandleBottomRight Handle = "bottomRight"
	HandleStart       Handle = "start"
	HandleEnd         Handle = "end"
	HandleInside      Handle = "inside"
)

// Cursor is a CSS cursor keyword.
type Cursor string

const (
	CursorDefault   Cursor = "default"
	CursorMove      Cursor = "move"
	CursorNWSE      Cursor = "nwse-resize"
	CursorNESW      Cursor = "nesw-resize"
	CursorCrosshair Cursor = "crosshair"
	CursorGrab      Cursor = "grab"
	CursorGrabbing  Cursor = "grabbing"
	CursorPointer   Cursor = "pointer"
	CursorText      Cursor = "text"
)

// CursorForHandle maps a handle to the cursor shown while hovering it.
func CursorForHandle(h Handle) Cursor {
	switch h {
	case HandleTopLeft, HandleBottomRight:
		return CursorNWSE
	case HandleTopRight, HandleBottomLeft:
		return CursorNESW
	case HandleStart, HandleEnd, HandleInside:
		return CursorMove
	default:
		return CursorDefault
	}
}
