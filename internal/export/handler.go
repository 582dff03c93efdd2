package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mrwick1/sketchflow/internal/document"
)

// ErrNotFound is returned by a SceneSource for an unknown board.
var ErrNotFound = errors.New("board not found")

// SceneSource loads the scene for a board.
type SceneSource interface {
	LoadScene(ctx context.Context, boardID string) (*document.Scene, error)
}

type Handler struct {
	scenes   SceneSource
	opts     Options
	notFound func(error) bool
}

// NewHandler serves exports of scenes from src. isNotFound reports whether
// a src error means the board does not exist.
func NewHandler(src SceneSource, opts Options, isNotFound func(error) bool) *Handler {
	if isNotFound == nil {
		isNotFound = func(err error) bool { return errors.Is(err, ErrNotFound) }
	}
	return &Handler{scenes: src, opts: opts, notFound: isNotFound}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/boards/{boardId}/export.{format}", h.Export).Methods("GET")
}

// Export renders the board's scene. An empty scene has nothing to export and
// answers 204.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boardID := vars["boardId"]

	format, err := ParseFormat(vars["format"])
	if err != nil {
		http.Error(w, "invalid format: must be svg, png, or pdf", http.StatusBadRequest)
		return
	}

	scene, err := h.scenes.LoadScene(r.Context(), boardID)
	if err != nil {
		if h.notFound(err) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		slog.Error("load scene for export", "board", boardID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	opts := h.opts
	if v := r.URL.Query().Get("scale"); v != "" && format == FormatPNG {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil || ratio <= 0 || ratio > 4 {
			http.Error(w, "invalid scale: must be in (0, 4]", http.StatusBadRequest)
			return
		}
		opts.PixelRatio = ratio
	}

	var buf bytes.Buffer
	if err := Write(&buf, format, scene.Elements(), opts); err != nil {
		if errors.Is(err, ErrEmptyScene) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if errors.Is(err, ErrTooLarge) {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		slog.Error("export failed", "board", boardID, "format", format, "error", err)
		http.Error(w, fmt.Sprintf("export failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, boardID, format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())

	slog.Info("export complete", "board", boardID, "format", format, "size", buf.Len())
}
