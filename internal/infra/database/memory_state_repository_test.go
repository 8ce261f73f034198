package database

import (
	"context"
	"testing"

	"homework_status_bot/internal/domain/state"
)

func TestMemoryStateRepositoryLoadBeforeSave(t *testing.T) {
	repo := NewMemoryStateRepository()

	if _, err := repo.Load(context.Background()); err != ErrStateNotFound {
		t.Errorf("err = %v, want ErrStateNotFound", err)
	}
}

func TestMemoryStateRepositorySaveAndLoad(t *testing.T) {
	repo := NewMemoryStateRepository()

	saved := &state.BotState{Cursor: 1700000000, LastErrorNotice: "Сбой в работе программы: boom"}
	if err := repo.Save(context.Background(), saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Cursor != saved.Cursor || loaded.LastErrorNotice != saved.LastErrorNotice {
		t.Errorf("loaded %+v, want cursor and notice preserved", loaded)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped on save")
	}

	// The stored copy must be isolated from later caller mutations.
	saved.Cursor = 1
	reloaded, _ := repo.Load(context.Background())
	if reloaded.Cursor != 1700000000 {
		t.Errorf("stored state mutated through the caller's pointer: %d", reloaded.Cursor)
	}
}
