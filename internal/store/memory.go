package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type Memory struct {
	mu     sync.RWMutex
	boards map[string]*Board
	now    func() time.Time
}

func NewMemory() *Memory {
	return &Memory{boards: make(map[string]*Board), now: time.Now}
}

func (m *Memory) Create(_ context.Context, id, name string, scene []byte) (*Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.boards[id]; ok {
		return nil, fmt.Errorf("create board %s: already exists", id)
	}
	now := m.now().UTC()
	b := &Board{
		ID:        id,
		Name:      name,
		Scene:     clone(scene),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.boards[id] = b
	return copyBoard(b), nil
}

func (m *Memory) Get(_ context.Context, id string) (*Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyBoard(b), nil
}

// List returns boards newest first.
func (m *Memory) List(_ context.Context) ([]Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Board, 0, len(m.boards))
	for _, b := range m.boards {
		out = append(out, *copyBoard(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.boards[id]; !ok {
		return ErrNotFound
	}
	delete(m.boards, id)
	return nil
}

func (m *Memory) SaveScene(_ context.Context, id string, scene []byte) (*Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	b.Scene = clone(scene)
	b.Version++
	b.UpdatedAt = m.now().UTC()
	return copyBoard(b), nil
}

func copyBoard(b *Board) *Board {
	c := *b
	c.Scene = clone(b.Scene)
	return &c
}

func clone(p []byte) []byte {
	if p == nil {
		return nil
	}
	return append([]byte(nil), p...)
}
