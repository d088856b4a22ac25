package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// BannerCache implements ports.BannerCache using Redis. Values are the
// canonical banner JSON, not the binary record, so links are preserved.
type BannerCache struct {
	client *goredis.Client
	prefix string
}

// NewBannerCache creates a new Redis-backed banner cache.
func NewBannerCache(client *goredis.Client) *BannerCache {
	return &BannerCache{
		client: client,
		prefix: "banner:",
	}
}

// Get retrieves a cached banner payload by publisher key.
// Returns nil, nil if the key does not exist.
func (c *BannerCache) Get(ctx context.Context, publisherKey string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+publisherKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis banner get: %w", err)
	}
	return val, nil
}

// Set stores a banner payload. A zero ttl keeps the entry until evicted.
func (c *BannerCache) Set(ctx context.Context, publisherKey string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+publisherKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis banner set: %w", err)
	}
	return nil
}

// Delete evicts a banner. Deleting a missing key is not an error.
func (c *BannerCache) Delete(ctx context.Context, publisherKey string) error {
	if err := c.client.Del(ctx, c.prefix+publisherKey).Err(); err != nil {
		return fmt.Errorf("redis banner delete: %w", err)
	}
	return nil
}
