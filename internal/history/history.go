package history

import (
	"context"
	"fmt"

	"codeberg.org/vaidya/server/internal/llm"
)

// bounded per-session conversation log
type Buffer struct {
	store Store
}

func NewBuffer(store Store) *Buffer {
	return &Buffer{store: store}
}

// records one exchange as a (user, model) pair and trims to the newest MaxTurns entries
func (b *Buffer) AppendTurn(ctx context.Context, sessionID, userMsg, reply string) error {
	err := b.store.Append(ctx, sessionID, MaxTurns,
		llm.Message{Role: llm.RoleUser, Content: userMsg},
		llm.Message{Role: llm.RoleModel, Content: reply},
	)
	if err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	return nil
}

// returns the history in model-ready order, or nil when there is none
func (b *Buffer) ProjectForModel(ctx context.Context, sessionID string) ([]llm.Message, error) {
	turns, err := b.store.Turns(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	if len(turns) == 0 {
		return nil, nil
	}

	return turns, nil
}

func (b *Buffer) Close() error {
	return b.store.Close()
}
