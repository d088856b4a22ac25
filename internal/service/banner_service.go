package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rewards-banner-service/internal/core/domain"
	"rewards-banner-service/internal/core/ports"
	"rewards-banner-service/pkg/apperror"
	"rewards-banner-service/pkg/logger"

	"github.com/rs/zerolog"
)

type bannerService struct {
	repo     ports.BannerRepository
	cache    ports.BannerCache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewBannerService creates a new banner service. cache may be nil to
// disable the Redis fast path.
func NewBannerService(
	repo ports.BannerRepository,
	cache ports.BannerCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) ports.BannerService {
	return &bannerService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      logger.Component(log, "banner_service"),
	}
}

// Publish parses and stores a banner payload. The stored form is the
// re-encoded banner, so whitespace and unknown keys are not persisted.
func (s *bannerService) Publish(ctx context.Context, payload []byte) (*domain.Banner, error) {
	banner, err := domain.ParseBanner(payload)
	if err != nil {
		return nil, parseError(err)
	}

	canonical, err := json.Marshal(banner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode banner: %w", err))
	}

	if err := s.repo.Upsert(ctx, banner.PublisherKey(), canonical); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.cacheSet(ctx, banner.PublisherKey(), canonical)

	s.log.Info().
		Str("publisher_key", banner.PublisherKey()).
		Str("provider", banner.Provider()).
		Str("status", banner.Status().String()).
		Int("links", banner.Links().Len()).
		Msg("banner published")

	if !banner.Status().IsKnown() {
		s.log.Warn().
			Str("publisher_key", banner.PublisherKey()).
			Int32("status", banner.Status().Raw()).
			Msg("banner has unknown wallet status")
	}

	return banner, nil
}

// Get looks the banner up in the cache, then the repository.
func (s *bannerService) Get(ctx context.Context, publisherKey string) (*domain.Banner, error) {
	if banner := s.cacheGet(ctx, publisherKey); banner != nil {
		return banner, nil
	}

	payload, err := s.repo.GetPayload(ctx, publisherKey)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if payload == nil {
		return nil, apperror.ErrNotFound("Banner")
	}

	banner, err := domain.ParseBanner(payload)
	if err != nil {
		// Stored rows are written by Publish; a parse failure means corruption.
		return nil, apperror.InternalError(fmt.Errorf("stored banner %q: %w", publisherKey, err))
	}

	s.cacheSet(ctx, publisherKey, payload)
	return banner, nil
}

// EncodeParcel returns the binary record of a stored banner. Links are
// not part of the record.
func (s *bannerService) EncodeParcel(ctx context.Context, publisherKey string) ([]byte, error) {
	banner, err := s.Get(ctx, publisherKey)
	if err != nil {
		return nil, err
	}

	buf, err := banner.MarshalBinary()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return buf, nil
}

// DecodeParcel rebuilds a banner from a binary record.
func (s *bannerService) DecodeParcel(buf []byte) (*domain.Banner, error) {
	banner, err := domain.UnmarshalBanner(buf)
	if err != nil {
		s.log.Debug().Err(err).Int("bytes", len(buf)).Msg("rejected banner parcel")
		return nil, apperror.ErrParcelDecode(err)
	}
	return banner, nil
}

// Remove deletes a stored banner and evicts it from the cache.
func (s *bannerService) Remove(ctx context.Context, publisherKey string) error {
	deleted, err := s.repo.Delete(ctx, publisherKey)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, publisherKey); err != nil {
			s.log.Warn().Err(err).Str("publisher_key", publisherKey).Msg("banner cache evict failed")
		}
	}

	if !deleted {
		return apperror.ErrNotFound("Banner")
	}

	s.log.Info().Str("publisher_key", publisherKey).Msg("banner removed")
	return nil
}

// cacheGet returns nil on miss, cache failure or an unreadable entry.
func (s *bannerService) cacheGet(ctx context.Context, publisherKey string) *domain.Banner {
	if s.cache == nil {
		return nil
	}

	payload, err := s.cache.Get(ctx, publisherKey)
	if err != nil {
		s.log.Warn().Err(err).Str("publisher_key", publisherKey).Msg("banner cache read failed")
		return nil
	}
	if payload == nil {
		return nil
	}

	banner, err := domain.ParseBanner(payload)
	if err != nil {
		s.log.Warn().Err(err).Str("publisher_key", publisherKey).Msg("evicting unreadable cached banner")
		if err := s.cache.Delete(ctx, publisherKey); err != nil {
			s.log.Warn().Err(err).Str("publisher_key", publisherKey).Msg("banner cache evict failed")
		}
		return nil
	}
	return banner
}

func (s *bannerService) cacheSet(ctx context.Context, publisherKey string, payload []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, publisherKey, payload, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("publisher_key", publisherKey).Msg("banner cache write failed")
	}
}

// parseError maps a domain parse failure to its API error.
func parseError(err error) error {
	var pe *domain.ParseError
	if !errors.As(err, &pe) {
		return apperror.InternalError(err)
	}
	switch pe.Kind {
	case domain.MissingField:
		return apperror.ErrMissingField(pe.Key, err)
	case domain.TypeMismatch:
		return apperror.ErrTypeMismatch(pe.Key, err)
	default:
		return apperror.ErrMalformedJSON(err)
	}
}
