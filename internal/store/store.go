// Package store persists boards and the serialized scene each one holds.
package store

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("board not found")

type Board struct {
	ID        string
	Name      string
	Scene     []byte
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is implemented by Memory and Postgres.
type Store interface {
	Create(ctx context.Context, id, name string, scene []byte) (*Board, error)
	Get(ctx context.Context, id string) (*Board, error)
	List(ctx context.Context) ([]Board, error)
	Delete(ctx context.Context, id string) error
	// SaveScene replaces the board's scene and bumps its version.
	SaveScene(ctx context.Context, id string, scene []byte) (*Board, error)
}
