package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/songjournal/internal/oembed"
)

const (
	// DefaultCacheTTL is the default TTL for cached track metadata (24 hours)
	DefaultCacheTTL = 24 * time.Hour
)

// MetadataCache stores oEmbed lookups per track in Redis
type MetadataCache struct {
	store *Store
	ttl   time.Duration
}

// NewMetadataCache creates a cache on top of the store. ttl <= 0 uses DefaultCacheTTL.
func NewMetadataCache(s *Store, ttl time.Duration) *MetadataCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MetadataCache{store: s, ttl: ttl}
}

// Get retrieves cached metadata. A miss returns ok=false and no error.
func (c *MetadataCache) Get(ctx context.Context, trackID string) (oembed.Metadata, bool, error) {
	data, err := c.store.client.Get(ctx, MetadataKey(trackID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return oembed.Metadata{}, false, nil // Cache miss
		}
		return oembed.Metadata{}, false, fmt.Errorf("failed to get cached metadata: %w", err)
	}

	var md oembed.Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return oembed.Metadata{}, false, fmt.Errorf("failed to unmarshal cached metadata: %w", err)
	}
	return md, true, nil
}

// Put stores metadata for a track
func (c *MetadataCache) Put(ctx context.Context, trackID string, md oembed.Metadata) error {
	data, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := c.store.client.Set(ctx, MetadataKey(trackID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache metadata: %w", err)
	}
	return nil
}
