package live

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrBoardBusy = errors.New("board already has an editor")

// Hub tracks the one editor each board may have.
type Hub struct {
	mu      sync.Mutex
	editors map[string]*Client // boardID -> client
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{editors: make(map[string]*Client), logger: logger}
}

// Register makes c the editor of its board, or fails with ErrBoardBusy.
func (h *Hub) Register(c *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cur, ok := h.editors[c.BoardID]; ok && cur != c {
		return ErrBoardBusy
	}
	h.editors[c.BoardID] = c
	h.logger.Info("editor joined", "board", c.BoardID, "client", c.ClientID)
	return nil
}

// Unregister saves c's pending changes and frees its board.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	cur, ok := h.editors[c.BoardID]
	if !ok || cur != c {
		h.mu.Unlock()
		return
	}
	delete(h.editors, c.BoardID)
	h.mu.Unlock()

	c.session.Flush(context.Background())
	close(c.send)
	h.logger.Info("editor left", "board", c.BoardID, "client", c.ClientID)
}

func (h *Hub) Editor(boardID string) (*Client, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.editors[boardID]
	return c, ok
}

// Stop saves every open session. Connections close when the server
// shuts down.
func (h *Hub) Stop(ctx context.Context) {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.editors))
	for _, c := range h.editors {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.session.Flush(ctx)
	}
	h.logger.Info("hub stopped", "sessions", len(clients))
}
