package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chadm2c/xml-importer/internal/domain"
	"github.com/chadm2c/xml-importer/internal/logger"
)

const (
	// ListKeyPrefix prefixes every cached product page.
	ListKeyPrefix = "products:v"
	// VersionKey holds the current list cache generation.
	VersionKey = "products:version"

	DefaultTTL = 5 * time.Minute
)

// ProductCache caches product list pages in Redis. Entries are never
// deleted individually: bumping the version orphans every older key and
// lets the TTL reclaim it.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a ProductCache. A non-positive ttl uses DefaultTTL.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProductCache{client: client, ttl: ttl}
}

// GetPage returns a cached page. Any Redis error is reported as a miss.
func (c *ProductCache) GetPage(ctx context.Context, search string, req domain.PageRequest) (domain.Page[domain.Product], bool) {
	version, err := c.version(ctx)
	if err != nil {
		logger.Warn("Product cache unavailable", slog.String("error", err.Error()))
		return domain.Page[domain.Product]{}, false
	}

	data, err := c.client.Get(ctx, ListKey(version, search, req)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Failed to read product page from cache", slog.String("error", err.Error()))
		}
		return domain.Page[domain.Product]{}, false
	}

	var page domain.Page[domain.Product]
	if err := json.Unmarshal(data, &page); err != nil {
		logger.Warn("Failed to unmarshal cached product page", slog.String("error", err.Error()))
		return domain.Page[domain.Product]{}, false
	}

	return page, true
}

// SetPage stores a page under the current version. Failures are logged only.
func (c *ProductCache) SetPage(ctx context.Context, search string, req domain.PageRequest, page domain.Page[domain.Product]) {
	version, err := c.version(ctx)
	if err != nil {
		logger.Warn("Product cache unavailable", slog.String("error", err.Error()))
		return
	}

	data, err := json.Marshal(page)
	if err != nil {
		logger.Warn("Failed to marshal product page for cache", slog.String("error", err.Error()))
		return
	}

	if err := c.client.Set(ctx, ListKey(version, search, req), data, c.ttl).Err(); err != nil {
		logger.Warn("Failed to cache product page", slog.String("error", err.Error()))
	}
}

// Invalidate drops every cached page by bumping the version.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	newVersion, err := c.client.Incr(ctx, VersionKey).Result()
	if err != nil {
		return fmt.Errorf("invalidate product cache: %w", err)
	}

	logger.Debug("Product cache invalidated", slog.Int64("version", newVersion))
	return nil
}

func (c *ProductCache) version(ctx context.Context) (int64, error) {
	ver, err := c.client.Get(ctx, VersionKey).Int64()
	if err == nil {
		return ver, nil
	}
	if !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("get cache version: %w", err)
	}

	if err := c.client.SetNX(ctx, VersionKey, 1, 0).Err(); err != nil {
		return 0, fmt.Errorf("init cache version: %w", err)
	}
	ver, err = c.client.Get(ctx, VersionKey).Int64()
	if err != nil {
		return 0, fmt.Errorf("get cache version: %w", err)
	}
	return ver, nil
}

// ListKey builds the key for one page of a listing.
func ListKey(version int64, search string, req domain.PageRequest) string {
	req = req.Normalize()
	return fmt.Sprintf("%s%d:%d:%d:%s", ListKeyPrefix, version, req.Page, req.Size,
		strings.ToLower(strings.TrimSpace(search)))
}
