// internal/infra/database/postgres_state_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/state"
)

// ErrStateNotFound is returned when no bot state row has been saved yet.
var ErrStateNotFound = fmt.Errorf("bot state not found")

// PostgresStateRepository persists the single BotState row.
type PostgresStateRepository struct {
	db *sql.DB
}

func NewPostgresStateRepository(db *sql.DB) *PostgresStateRepository {
	return &PostgresStateRepository{db: db}
}

// InitSchema creates the bot_state table if it does not exist. The table
// holds exactly one row, enforced by the id check constraint.
func (r *PostgresStateRepository) InitSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS bot_state (
               id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
               poll_cursor BIGINT NOT NULL DEFAULT 0,
               last_error_notice TEXT NOT NULL DEFAULT '',
               updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
           )`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("error creating bot_state table: %w", err)
	}
	return nil
}

func (r *PostgresStateRepository) Load(ctx context.Context) (*state.BotState, error) {
	query := `SELECT poll_cursor, last_error_notice, updated_at FROM bot_state WHERE id = 1`
	s := state.BotState{}
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Cursor, &s.LastErrorNotice, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("error loading bot state: %w", err)
	}
	return &s, nil
}

func (r *PostgresStateRepository) Save(ctx context.Context, s *state.BotState) error {
	query := `INSERT INTO bot_state (id, poll_cursor, last_error_notice, updated_at)
               VALUES (1, $1, $2, $3)
               ON CONFLICT (id) DO UPDATE
               SET poll_cursor = EXCLUDED.poll_cursor,
                   last_error_notice = EXCLUDED.last_error_notice,
                   updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, s.Cursor, s.LastErrorNotice, time.Now()); err != nil {
		return fmt.Errorf("error saving bot state: %w", err)
	}
	return nil
}
