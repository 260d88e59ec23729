package history

import (
	"fmt"

	"codeberg.org/vaidya/server/internal/storage"
)

// creates a history store for the given driver
func NewStore(storeType storage.StoreType, opts ...storage.Option) (Store, error) {
	o := storage.Apply(opts...)

	switch storeType {
	case storage.StoreTypeMemory:
		return NewMemoryStore(), nil
	case storage.StoreTypeRedis:
		if o.RedisClient == nil {
			return nil, fmt.Errorf("%w: redis store requires a client", storage.ErrInvalidConfig)
		}
		return NewRedisStore(o.RedisClient, o.TTL), nil
	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrInvalidStoreType, storeType)
	}
}
