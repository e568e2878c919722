// Package memcache adapts an in-process sturdyc client to the generic
// cache backend contract used by the projection layer.
package memcache

import (
	"context"
	"fmt"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/citywatch/storage-service/internal/domain"
)

// Config holds the sturdyc client settings.
type Config struct {
	// Capacity is the maximum number of entries the cache can hold.
	Capacity int

	// NumShards controls how the key space is split for concurrent access.
	NumShards int

	// TTL is the lifetime of an entry. Projections are rebuildable from the
	// repository, so expiry only costs a repository read.
	TTL time.Duration

	// EvictionPercentage is the share of entries evicted when the cache is
	// full, between 1 and 100.
	EvictionPercentage int
}

// DefaultConfig returns settings suitable for a single service instance.
func DefaultConfig() Config {
	return Config{
		Capacity:           100_000,
		NumShards:          256,
		TTL:                24 * time.Hour,
		EvictionPercentage: 10,
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("memcache: capacity must be greater than 0: %w", domain.ErrValidation)
	}
	if c.NumShards <= 0 {
		return fmt.Errorf("memcache: num_shards must be greater than 0: %w", domain.ErrValidation)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("memcache: ttl must be greater than 0: %w", domain.ErrValidation)
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return fmt.Errorf("memcache: eviction_percentage must be between 1 and 100: %w", domain.ErrValidation)
	}
	return nil
}

// Cache wraps a sturdyc client. The client handles sharding and eviction
// internally and is safe for concurrent use.
type Cache struct {
	client *sturdyc.Client[any]
}

// New creates a Cache from the given configuration.
func New(cfg Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client := sturdyc.New[any](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage)
	return &Cache{client: client}, nil
}

// Add upserts a value under the key.
func (c *Cache) Add(ctx context.Context, key string, value any) error {
	c.client.Set(key, value)
	return nil
}

// Get returns the value stored under the key, or domain.ErrNotFound when
// the key is absent or expired.
func (c *Cache) Get(ctx context.Context, key string) (any, error) {
	v, ok := c.client.Get(key)
	if !ok {
		return nil, fmt.Errorf("memcache: key %q: %w", key, domain.ErrNotFound)
	}
	return v, nil
}

// Delete removes the key. Deleting an absent key is a no-op.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.client.Delete(key)
	return nil
}
