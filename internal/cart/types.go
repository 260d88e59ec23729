package cart

import (
	"context"
	"errors"

	"codeberg.org/vaidya/server/internal/catalog"
)

const keyCart = "cart:%s"

var ErrIndexOutOfRange = errors.New("cart index out of range")

// ordered per-session list of catalog items; duplicates allowed
type Store interface {
	// returns the cart oldest first; empty when the session has none
	Items(ctx context.Context, sessionID string) ([]catalog.Item, error)

	// appends an item and returns the new count
	Add(ctx context.Context, sessionID string, item catalog.Item) (int, error)

	// removes the item at index and returns it with the new count
	Remove(ctx context.Context, sessionID string, index int) (catalog.Item, int, error)

	Clear(ctx context.Context, sessionID string) error

	Close() error
}
