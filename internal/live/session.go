package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mrwick1/sketchflow/internal/board"
	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/engine"
)

// Wheel zoom is this fraction of the wheel delta.
const wheelZoomFactor = -0.01

var ErrUnknownMessage = errors.New("unknown message type")

// Boards loads and saves the scene behind a session.
type Boards interface {
	LoadScene(ctx context.Context, boardID string) (*document.Scene, error)
	SaveScene(ctx context.Context, boardID string, scene *document.Scene) (*board.Board, error)
}

// Session drives one board's engine from client messages.
type Session struct {
	mu          sync.Mutex
	boardID     string
	engine      *engine.Engine
	boards      Boards
	logger      *slog.Logger
	saveTimeout time.Duration
	dirty       bool
}

func NewSession(boardID string, eng *engine.Engine, boards Boards, saveTimeout time.Duration, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		boardID:     boardID,
		engine:      eng,
		boards:      boards,
		logger:      logger.With("board", boardID),
		saveTimeout: saveTimeout,
	}
}

// Handle applies msg and returns the messages to send back. A failed
// message yields an error message rather than an error so the
// connection stays open.
func (s *Session) Handle(ctx context.Context, msg *Message) []*Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	save, err := s.apply(msg)
	if err != nil {
		s.logger.Warn("message rejected", "type", msg.Type, "error", err)
		return []*Message{s.errorMessage(msg, err)}
	}

	out := []*Message{s.frameMessage()}
	if save {
		if saved := s.saveLocked(ctx); saved != nil {
			out = append(out, saved)
		}
	}
	for _, m := range out {
		m.Seq = msg.Seq
	}
	return out
}

// apply runs one message against the engine. save reports that the
// message ends a change worth persisting.
func (s *Session) apply(msg *Message) (save bool, err error) {
	e := s.engine
	switch msg.Type {
	case TypePointerDown:
		var p PointerPayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		tool := p.Tool
		if tool == "" {
			tool = e.Tool()
		}
		if _, err := engine.ParseTool(string(tool)); err != nil {
			return false, err
		}
		x, y := e.Viewport().ScreenToWorld(p.X, p.Y)
		_, before := e.HistoryState()
		if err := e.BeginGesture(x, y, tool); err != nil {
			return false, err
		}
		// Only a gesture that committed a snapshot changed the scene.
		_, after := e.HistoryState()
		committed := after != before
		if committed {
			s.dirty = true
		}
		return committed && tool == engine.ToolEraser, nil

	case TypePointerMove:
		var p PointerPayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		x, y := e.Viewport().ScreenToWorld(p.X, p.Y)
		return false, e.UpdateGesture(x, y)

	case TypePointerUp:
		var p PointerPayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		x, y := e.Viewport().ScreenToWorld(p.X, p.Y)
		if err := e.EndGesture(x, y); err != nil {
			return false, err
		}
		return e.Action() != engine.ActionWriting, nil

	case TypeTextCommit:
		var p TextPayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		if err := e.CommitText(p.Text); err != nil {
			return false, err
		}
		s.dirty = true
		return true, nil

	case TypeToolSet:
		var p ToolPayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		tool, err := engine.ParseTool(string(p.Tool))
		if err != nil {
			return false, err
		}
		e.SetTool(tool)
		return false, nil

	case TypeStyleSet:
		var p StylePayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		e.SetStyle(p.Style)
		if p.ElementID == "" {
			return false, nil
		}
		if err := e.RestyleElement(p.ElementID, p.Style); err != nil {
			return false, err
		}
		s.dirty = true
		return true, nil

	case TypeElementDelete:
		var p ElementPayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		if err := e.DeleteElement(p.ElementID); err != nil {
			return false, err
		}
		s.dirty = true
		return true, nil

	case TypeUndo, TypeRedo:
		var changed bool
		if msg.Type == TypeUndo {
			changed = e.Undo()
		} else {
			changed = e.Redo()
		}
		if changed {
			s.dirty = true
		}
		return changed, nil

	case TypeClear:
		e.Clear()
		s.dirty = true
		return true, nil

	case TypeWheel:
		var p WheelPayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		if p.Ctrl {
			e.ZoomBy(p.DeltaY * wheelZoomFactor)
		} else {
			e.PanBy(-p.DeltaX, -p.DeltaY)
		}
		return false, nil

	case TypeZoom:
		var p ZoomPayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		e.ZoomBy(p.Delta)
		return false, nil

	case TypeResize:
		var p ResizePayload
		if err := decode(msg, &p); err != nil {
			return false, err
		}
		if p.Width <= 0 || p.Height <= 0 {
			return false, fmt.Errorf("resize: invalid size %vx%v", p.Width, p.Height)
		}
		e.ResizeCanvas(p.Width, p.Height)
		return false, nil

	case TypeFrameRequest:
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
}

// Flush saves unsaved changes. Called when the editor disconnects.
func (s *Session) Flush(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(ctx)
}

func (s *Session) saveLocked(ctx context.Context) *Message {
	if !s.dirty {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()

	b, err := s.boards.SaveScene(ctx, s.boardID, s.engine.Snapshot())
	if err != nil {
		s.logger.Error("save scene", "error", err)
		return s.errorMessage(&Message{Type: TypeSaved}, fmt.Errorf("save failed: %w", err))
	}
	s.dirty = false
	s.logger.Debug("scene saved", "version", b.Version, "elements", b.Elements)
	m, _ := newMessage(TypeSaved, SavedPayload{Version: b.Version})
	return m
}

// Frame renders the current state.
func (s *Session) Frame() *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameMessage()
}

func (s *Session) frameMessage() *Message {
	p := FramePayload{Frame: s.engine.Render()}
	if el, ok := s.engine.Editing(); ok {
		x, y := s.engine.Viewport().WorldToScreen(el.X1, el.Y1)
		p.Editing = &EditingPayload{
			ElementID: el.ID,
			X:         x,
			Y:         y,
			FontSize:  el.FontSize * s.engine.Viewport().Scale,
			Text:      el.Text,
		}
	}
	m, err := newMessage(TypeFrame, p)
	if err != nil {
		s.logger.Error("marshal frame", "error", err)
		return s.errorMessage(&Message{Type: TypeFrame}, err)
	}
	return m
}

func (s *Session) errorMessage(in *Message, err error) *Message {
	data, _ := json.Marshal(ErrorPayload{Message: err.Error()})
	return &Message{Type: TypeError, Seq: in.Seq, Payload: data}
}

func decode(msg *Message, v interface{}) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%s: missing payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%s: invalid payload: %w", msg.Type, err)
	}
	return nil
}
