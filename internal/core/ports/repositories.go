package ports

import (
	"context"
	"time"
)

// BannerRepository persists the raw banner payload keyed by publisher key.
// The payload is stored as received (canonical JSON), never the binary record,
// so links survive storage.
type BannerRepository interface {
	Upsert(ctx context.Context, publisherKey string, payload []byte) error
	// GetPayload returns nil, nil when no banner is stored for publisherKey.
	GetPayload(ctx context.Context, publisherKey string) ([]byte, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, publisherKey string) (bool, error)
}

// BannerCache is the Redis-layer banner lookup (fast path).
type BannerCache interface {
	Get(ctx context.Context, publisherKey string) ([]byte, error) // Returns cached payload or nil
	Set(ctx context.Context, publisherKey string, payload []byte, ttl time.Duration) error
	Delete(ctx context.Context, publisherKey string) error
}
