package ports

import (
	"context"

	"rewards-banner-service/internal/core/domain"
)

// BannerService defines the banner publishing and lookup logic.
type BannerService interface {
	// Publish parses a raw banner JSON payload and stores it.
	Publish(ctx context.Context, payload []byte) (*domain.Banner, error)
	Get(ctx context.Context, publisherKey string) (*domain.Banner, error)
	// EncodeParcel returns the binary record of a stored banner.
	EncodeParcel(ctx context.Context, publisherKey string) ([]byte, error)
	// DecodeParcel rebuilds a banner from a binary record. Links are never set.
	DecodeParcel(buf []byte) (*domain.Banner, error)
	Remove(ctx context.Context, publisherKey string) error
}
