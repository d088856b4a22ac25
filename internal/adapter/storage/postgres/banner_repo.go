package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// BannerRepo implements ports.BannerRepository.
type BannerRepo struct {
	pool Pool
}

// NewBannerRepo creates a new BannerRepo.
func NewBannerRepo(pool Pool) *BannerRepo {
	return &BannerRepo{pool: pool}
}

// Upsert stores the payload, replacing any previous banner for the key.
func (r *BannerRepo) Upsert(ctx context.Context, publisherKey string, payload []byte) error {
	query := `INSERT INTO banners (publisher_key, payload, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (publisher_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, publisherKey, payload); err != nil {
		return fmt.Errorf("upsert banner: %w", err)
	}
	return nil
}

// GetPayload fetches the stored payload. Returns nil, nil when absent.
func (r *BannerRepo) GetPayload(ctx context.Context, publisherKey string) ([]byte, error) {
	query := `SELECT payload FROM banners WHERE publisher_key = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, publisherKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner by publisher_key: %w", err)
	}
	return payload, nil
}

// Delete removes the banner and reports whether it existed.
func (r *BannerRepo) Delete(ctx context.Context, publisherKey string) (bool, error) {
	query := `DELETE FROM banners WHERE publisher_key = $1`

	tag, err := r.pool.Exec(ctx, query, publisherKey)
	if err != nil {
		return false, fmt.Errorf("delete banner: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
