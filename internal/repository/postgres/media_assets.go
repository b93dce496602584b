package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blockpress/internal/media"
)

// MediaAssetRepository persists sideloaded asset lookups so repeated
// conversions of the same source URL reuse the existing upload.
type MediaAssetRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewMediaAssetRepository creates a new MediaAssetRepository
func NewMediaAssetRepository(pool *pgxpool.Pool, tables *TableNames, logger *slog.Logger) *MediaAssetRepository {
	return &MediaAssetRepository{
		pool:   pool,
		tables: tables,
		logger: logger,
	}
}

// EnsureSchema creates the media assets table if it does not exist.
func (r *MediaAssetRepository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			source_url TEXT PRIMARY KEY,
			asset_id BIGINT NOT NULL,
			asset_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`, r.tables.MediaAssets)

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create media assets table: %w", err)
	}
	return nil
}

// Get retrieves the cached asset for a source URL, or nil when none exists.
func (r *MediaAssetRepository) Get(ctx context.Context, sourceURL string) (*media.Asset, error) {
	query := fmt.Sprintf(`
		SELECT asset_id, asset_url
		FROM %s
		WHERE source_url = $1
	`, r.tables.MediaAssets)

	var asset media.Asset
	err := r.pool.QueryRow(ctx, query, sourceURL).Scan(&asset.ID, &asset.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get media asset: %w", err)
	}

	return &asset, nil
}

// Put stores the asset for a source URL, replacing any previous entry.
func (r *MediaAssetRepository) Put(ctx context.Context, sourceURL string, asset *media.Asset) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (source_url, asset_id, asset_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (source_url) DO UPDATE SET
			asset_id = EXCLUDED.asset_id,
			asset_url = EXCLUDED.asset_url
	`, r.tables.MediaAssets)

	if _, err := r.pool.Exec(ctx, query, sourceURL, asset.ID, asset.URL); err != nil {
		return fmt.Errorf("put media asset: %w", err)
	}

	return nil
}
