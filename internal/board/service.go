// Package board manages named boards and the scene persisted with each.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrwick1/sketchflow/internal/document"
	"github.com/mrwick1/sketchflow/internal/persist"
	"github.com/mrwick1/sketchflow/internal/store"
	"github.com/mrwick1/sketchflow/internal/typeid"
)

var (
	ErrNotFound     = errors.New("board not found")
	ErrInvalidName  = errors.New("name is required")
	ErrInvalidScene = errors.New("invalid scene")
)

type Board struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   int64  `json:"version"`
	Elements  int    `json:"elements"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Service struct {
	store   store.Store
	factory *document.Factory
	logger  *slog.Logger
}

func NewService(st store.Store, factory *document.Factory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, factory: factory, logger: logger}
}

func (s *Service) Factory() *document.Factory { return s.factory }

// Create stores a new board. A nil scene starts it empty.
func (s *Service) Create(ctx context.Context, name string, scene *document.Scene) (*Board, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if scene == nil {
		scene = document.NewScene()
	}
	data, err := persist.Marshal(scene)
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	b, err := s.store.Create(ctx, typeid.NewBoardID(), name, data)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	s.logger.Info("board created", "board", b.ID, "elements", scene.Len())
	return toBoard(b, scene.Len()), nil
}

// CreateSample stores a new board seeded with one element of every kind.
func (s *Service) CreateSample(ctx context.Context, name string) (*Board, error) {
	scene, err := document.NewSampleScene(s.factory)
	if err != nil {
		return nil, fmt.Errorf("build sample scene: %w", err)
	}
	return s.Create(ctx, name, scene)
}

func (s *Service) Get(ctx context.Context, id string) (*Board, error) {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return toBoard(b, len(persist.Restore(b.Scene, s.factory, s.logger).Elements())), nil
}

func (s *Service) List(ctx context.Context) ([]Board, error) {
	stored, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	boards := make([]Board, len(stored))
	for i := range stored {
		boards[i] = *toBoard(&stored[i], -1)
	}
	return boards, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}
	s.logger.Info("board deleted", "board", id)
	return nil
}

// LoadScene restores the board's scene. Corrupt data yields an empty scene.
func (s *Service) LoadScene(ctx context.Context, id string) (*document.Scene, error) {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return persist.Restore(b.Scene, s.factory, s.logger.With("board", id)), nil
}

func (s *Service) SaveScene(ctx context.Context, id string, scene *document.Scene) (*Board, error) {
	data, err := persist.Marshal(scene)
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	b, err := s.store.SaveScene(ctx, id, data)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return toBoard(b, scene.Len()), nil
}

// ReplaceScene validates raw persisted data before storing it. Unlike
// LoadScene it rejects corrupt input instead of discarding it.
func (s *Service) ReplaceScene(ctx context.Context, id string, data []byte) (*Board, error) {
	scene, err := persist.Unmarshal(data, s.factory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return s.SaveScene(ctx, id, scene)
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// toBoard converts a stored board. A negative count omits the element count.
func toBoard(b *store.Board, elements int) *Board {
	out := &Board{
		ID:        b.ID,
		Name:      b.Name,
		Version:   b.Version,
		CreatedAt: b.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: b.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if elements >= 0 {
		out.Elements = elements
	}
	return out
}
