package storage

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// selects the backing driver for session-scoped stores
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"

	// default expiry for session-scoped Redis keys, refreshed on every write
	DefaultTTL = 24 * time.Hour
)

var (
	ErrInvalidStoreType = errors.New("invalid store type")
	ErrInvalidConfig    = errors.New("invalid store configuration")
)

// functional option for configuring a store
type Option func(*Options)

// resolved store configuration
type Options struct {
	RedisClient *redis.Client
	TTL         time.Duration
}

// sets the Redis client for Redis-backed stores
func WithRedisClient(client *redis.Client) Option {
	return func(o *Options) {
		o.RedisClient = client
	}
}

// sets the expiry for Redis keys
func WithTTL(ttl time.Duration) Option {
	return func(o *Options) {
		o.TTL = ttl
	}
}

// applies options over defaults
func Apply(opts ...Option) *Options {
	o := &Options{TTL: DefaultTTL}

	for _, opt := range opts {
		opt(o)
	}

	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}

	return o
}

// picks the driver from the presence of a Redis client
func TypeFor(client *redis.Client) StoreType {
	if client != nil {
		return StoreTypeRedis
	}

	return StoreTypeMemory
}
