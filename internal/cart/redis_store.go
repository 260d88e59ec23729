package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codeberg.org/vaidya/server/internal/catalog"
)

// retries for a removal that lost a WATCH race
const maxRemoveAttempts = 5

// Redis-backed cart store, one list per session
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(sessionID string) string {
	return fmt.Sprintf(keyCart, sessionID)
}

func (s *RedisStore) Items(ctx context.Context, sessionID string) ([]catalog.Item, error) {
	raw, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cart from redis: %w", err)
	}

	return decodeItems(raw)
}

func (s *RedisStore) Add(ctx context.Context, sessionID string, item catalog.Item) (int, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal cart item: %w", err)
	}

	key := s.key(sessionID)

	var push *redis.IntCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		push = pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add cart item in redis: %w", err)
	}

	return int(push.Val()), nil
}

func (s *RedisStore) Remove(ctx context.Context, sessionID string, index int) (catalog.Item, int, error) {
	key := s.key(sessionID)

	var (
		removed catalog.Item
		count   int
	)

	// optimistic lock: rewrite the list only if nobody touched it since the read
	remove := func(tx *redis.Tx) error {
		raw, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}

		if index < 0 || index >= len(raw) {
			count = len(raw)
			return ErrIndexOutOfRange
		}

		var item catalog.Item
		if err := json.Unmarshal([]byte(raw[index]), &item); err != nil {
			return fmt.Errorf("failed to unmarshal cart item: %w", err)
		}

		rest := make([]any, 0, len(raw)-1)
		for i, r := range raw {
			if i != index {
				rest = append(rest, r)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			if len(rest) > 0 {
				pipe.RPush(ctx, key, rest...)
				pipe.Expire(ctx, key, s.ttl)
			}
			return nil
		})
		if err != nil {
			return err
		}

		removed = item
		count = len(rest)
		return nil
	}

	for attempt := 0; attempt < maxRemoveAttempts; attempt++ {
		err := s.client.Watch(ctx, remove, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrIndexOutOfRange) {
			return nil, count, err
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to remove cart item in redis: %w", err)
		}

		return removed, count, nil
	}

	return nil, 0, fmt.Errorf("failed to remove cart item in redis: %w", redis.TxFailedErr)
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart in redis: %w", err)
	}

	return nil
}

// the client is shared with other stores, so closing is left to the owner
func (s *RedisStore) Close() error {
	return nil
}

func decodeItems(raw []string) ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(raw))
	for _, r := range raw {
		var item catalog.Item
		if err := json.Unmarshal([]byte(r), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}
