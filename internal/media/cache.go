package media

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// AssetCache remembers which source URLs have already been sideloaded so a
// deployment does not re-ingest the same image on every conversion.
type AssetCache interface {
	// Get returns the cached asset for sourceURL, or nil if absent.
	Get(ctx context.Context, sourceURL string) (*Asset, error)
	// Put records the asset stored for sourceURL.
	Put(ctx context.Context, sourceURL string, asset *Asset) error
}

// CachingUploader wraps an Uploader with an AssetCache. Cache errors are
// logged and never surface: a broken cache degrades to direct sideloads.
type CachingUploader struct {
	uploader Uploader
	cache    AssetCache
	logger   *slog.Logger
}

// NewCachingUploader wraps uploader with cache.
func NewCachingUploader(uploader Uploader, cache AssetCache, logger *slog.Logger) *CachingUploader {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachingUploader{
		uploader: uploader,
		cache:    cache,
		logger:   logger,
	}
}

// Sideload serves from the cache when possible, otherwise delegates and
// records the result. Failed sideloads are not cached.
func (c *CachingUploader) Sideload(ctx context.Context, sourceURL string) (*Asset, error) {
	cached, err := c.cache.Get(ctx, sourceURL)
	if err != nil {
		c.logger.Warn("asset cache read failed", "source_url", sourceURL, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	asset, err := c.uploader.Sideload(ctx, sourceURL)
	if err != nil || asset == nil {
		return asset, err
	}

	if err := c.cache.Put(ctx, sourceURL, asset); err != nil {
		c.logger.Warn("asset cache write failed", "source_url", sourceURL, "error", err)
	}
	return asset, nil
}

// MemoryCache is a process-local AssetCache.
//
// Thread-safe for concurrent use.
type MemoryCache struct {
	mu     sync.RWMutex
	assets map[string]Asset
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{assets: make(map[string]Asset)}
}

// Get returns the cached asset for sourceURL, or nil.
func (m *MemoryCache) Get(_ context.Context, sourceURL string) (*Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.assets[sourceURL]; ok {
		copied := a
		return &copied, nil
	}
	return nil, nil
}

// Put records asset for sourceURL.
func (m *MemoryCache) Put(_ context.Context, sourceURL string, asset *Asset) error {
	if asset == nil {
		return fmt.Errorf("nil asset for %s", sourceURL)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[sourceURL] = *asset
	return nil
}
