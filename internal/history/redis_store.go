package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codeberg.org/vaidya/server/internal/llm"
)

// Redis-backed history store, one list per session
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, limit int, turns ...llm.Message) error {
	if len(turns) == 0 {
		return nil
	}

	values := make([]any, 0, len(turns))
	for _, t := range turns {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal turn: %w", err)
		}
		values = append(values, data)
	}

	key := fmt.Sprintf(keyHistory, sessionID)

	// MULTI/EXEC so concurrent appends never interleave with the trim
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		if limit > 0 {
			pipe.LTrim(ctx, key, int64(-limit), -1)
		}
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append history in redis: %w", err)
	}

	return nil
}

func (s *RedisStore) Turns(ctx context.Context, sessionID string) ([]llm.Message, error) {
	key := fmt.Sprintf(keyHistory, sessionID)

	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history from redis: %w", err)
	}

	turns := make([]llm.Message, 0, len(raw))
	for _, r := range raw {
		var t llm.Message
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn: %w", err)
		}
		turns = append(turns, t)
	}

	return turns, nil
}

// the client is shared with other stores, so closing is left to the owner
func (s *RedisStore) Close() error {
	return nil
}
