package live

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mrwick1/sketchflow/internal/board"
	"github.com/mrwick1/sketchflow/internal/engine"
)

type Handler struct {
	hub         *Hub
	boards      Boards
	newEngine   func() *engine.Engine
	origins     []string
	saveTimeout time.Duration
	logger      *slog.Logger
}

// NewHandler serves editor connections. newEngine builds the engine each
// session drives; origins are host patterns accepted for cross-origin
// upgrades.
func NewHandler(hub *Hub, boards Boards, newEngine func() *engine.Engine, origins []string, saveTimeout time.Duration, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		hub:         hub,
		boards:      boards,
		newEngine:   newEngine,
		origins:     origins,
		saveTimeout: saveTimeout,
		logger:      logger,
	}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/ws/boards/{boardId}", h.ServeWS)
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	boardID := mux.Vars(r)["boardId"]

	scene, err := h.boards.LoadScene(r.Context(), boardID)
	if err != nil {
		if errors.Is(err, board.ErrNotFound) {
			http.Error(w, "board not found", http.StatusNotFound)
			return
		}
		h.logger.Error("load scene", "board", boardID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	eng := h.newEngine()
	eng.Hydrate(scene)

	clientID := uuid.New().String()
	session := NewSession(boardID, eng, h.boards, h.saveTimeout, h.logger)
	client := NewClient(h.hub, session, boardID, clientID, h.logger)

	if err := h.hub.Register(client); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		h.logger.Error("websocket accept", "error", err)
		h.hub.Unregister(client)
		return
	}
	client.conn = conn

	welcome, _ := newMessage(TypeWelcome, WelcomePayload{ClientID: clientID, BoardID: boardID})
	client.Send(welcome)
	client.Send(session.Frame())

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
