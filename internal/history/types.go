package history

import (
	"context"

	"codeberg.org/vaidya/server/internal/llm"
)

const (
	// most recent turns kept per session; always an even count so pairs stay intact
	MaxTurns = 20

	keyHistory = "chat:history:%s"
)

// persists ordered chat turns per session
type Store interface {
	// appends turns in order and keeps only the newest limit entries
	Append(ctx context.Context, sessionID string, limit int, turns ...llm.Message) error

	// returns the stored turns oldest first; empty when the session has none
	Turns(ctx context.Context, sessionID string) ([]llm.Message, error)

	Close() error
}
