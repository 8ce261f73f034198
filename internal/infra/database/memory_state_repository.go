// internal/infra/database/memory_state_repository.go
package database

import (
	"context"
	"sync"
	"time"

	"homework_status_bot/internal/domain/state"
)

// MemoryStateRepository keeps the bot state in process memory. It is used
// when no DATABASE_URL is configured and in tests; state then lives only for
// the process lifetime, which matches the original script's behavior.
type MemoryStateRepository struct {
	mu    sync.Mutex
	saved *state.BotState
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{}
}

func (r *MemoryStateRepository) Load(_ context.Context) (*state.BotState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saved == nil {
		return nil, ErrStateNotFound
	}
	copied := *r.saved
	return &copied, nil
}

func (r *MemoryStateRepository) Save(_ context.Context, s *state.BotState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	copied.UpdatedAt = time.Now()
	r.saved = &copied
	return nil
}
