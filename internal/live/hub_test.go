package live

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mrwick1/sketchflow/internal/engine"
)

func newTestClient(hub *Hub, boards *fakeBoards, boardID, clientID string) *Client {
	s := NewSession(boardID, engine.New(), boards, time.Second, nil)
	return NewClient(hub, s, boardID, clientID, nil)
}

func TestHubSingleEditor(t *testing.T) {
	hub := NewHub(nil)
	boards := newFakeBoards("a", "b")

	first := newTestClient(hub, boards, "a", "c1")
	if err := hub.Register(first); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := hub.Register(newTestClient(hub, boards, "a", "c2")); !errors.Is(err, ErrBoardBusy) {
		t.Errorf("second editor err = %v, want ErrBoardBusy", err)
	}
	if err := hub.Register(newTestClient(hub, boards, "b", "c3")); err != nil {
		t.Errorf("other board err = %v", err)
	}

	hub.Unregister(first)
	if _, ok := hub.Editor("a"); ok {
		t.Error("board a still has an editor")
	}
	if err := hub.Register(newTestClient(hub, boards, "a", "c4")); err != nil {
		t.Errorf("register after leave err = %v", err)
	}
}

func TestHubUnregisterFlushes(t *testing.T) {
	hub := NewHub(nil)
	boards := newFakeBoards("a")
	c := newTestClient(hub, boards, "a", "c1")
	if err := hub.Register(c); err != nil {
		t.Fatal(err)
	}
	c.session.Handle(context.Background(), &Message{Type: TypePointerDown, Payload: mustJSON(PointerPayload{Tool: engine.ToolPencil})})

	hub.Unregister(c)
	if boards.saves != 1 {
		t.Errorf("saves = %d, want 1", boards.saves)
	}
	if _, open := <-c.send; open {
		t.Error("send channel still open")
	}
}

func TestHubStopFlushesAll(t *testing.T) {
	hub := NewHub(nil)
	boards := newFakeBoards("a", "b")
	for _, id := range []string{"a", "b"} {
		c := newTestClient(hub, boards, id, "c-"+id)
		if err := hub.Register(c); err != nil {
			t.Fatal(err)
		}
		c.session.Handle(context.Background(), &Message{Type: TypePointerDown, Payload: mustJSON(PointerPayload{Tool: engine.ToolPencil})})
	}

	hub.Stop(context.Background())
	if boards.saves != 2 {
		t.Errorf("saves = %d, want 2", boards.saves)
	}
}
