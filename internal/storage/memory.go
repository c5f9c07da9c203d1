package storage

import (
	"context"
	"sync"

	"zoomcanvas/internal/board"
)

// MemoryStorage is an in-memory Persister, used when no data file is
// wanted and in tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	state *board.State
	saves int
}

// NewMemoryStorage returns an empty memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) SaveState(ctx context.Context, s board.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c := s.Clone()
	c.Drag = nil
	m.state = &c
	m.saves++
	return nil
}

func (m *MemoryStorage) LoadState(ctx context.Context) (board.State, error) {
	if err := ctx.Err(); err != nil {
		return board.State{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == nil {
		return board.State{}, ErrStateNotFound
	}
	return m.state.Clone(), nil
}

// Saves returns how many times SaveState succeeded.
func (m *MemoryStorage) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
