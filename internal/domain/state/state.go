// internal/domain/state/state.go
package state

import (
	"context"
	"time"
)

// BotState is the poller's durable state: the lower bound of the next poll
// window and the text of the last error diagnostic already sent to the chat.
// Persisting both means a restart resumes from the server's cursor and does
// not re-send a diagnostic the chat has already seen.
type BotState struct {
	Cursor          int64
	LastErrorNotice string
	UpdatedAt       time.Time
}

// Repository defines storage for the single BotState row.
type Repository interface {
	// Load returns the persisted state, or ErrStateNotFound from the
	// implementing package when nothing has been saved yet.
	Load(ctx context.Context) (*BotState, error)
	Save(ctx context.Context, s *BotState) error
}
