package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"stayhub/models"
)

const (
	roomsCacheKey    = "catalog:rooms"
	availCachePrefix = "catalog:avail:"
)

// CachedSource is a read-through Redis cache in front of another
// Source. Cache failures degrade to a direct fetch; they never fail a
// request. The cache is passed to its consumers by reference so tests
// and alternate wirings can omit it.
type CachedSource struct {
	src    Source
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSource wraps src with a Redis cache holding entries for ttl.
func NewCachedSource(src Source, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSource {
	return &CachedSource{src: src, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *CachedSource) FetchRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if c.lookup(ctx, roomsCacheKey, &rooms) {
		return rooms, nil
	}

	rooms, err := c.src.FetchRooms(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, roomsCacheKey, rooms)
	return rooms, nil
}

func (c *CachedSource) FetchAvailability(ctx context.Context, start, end time.Time) ([]models.AvailabilityRecord, error) {
	key := availKey(start, end)

	var records []models.AvailabilityRecord
	if c.lookup(ctx, key, &records) {
		return records, nil
	}

	records, err := c.src.FetchAvailability(ctx, start, end)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, records)
	return records, nil
}

// Invalidate drops every cached catalog entry. Called when upstream
// data is known to have changed ahead of TTL expiry.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, availCachePrefix+"*", 0).Iterator()
	keys := []string{roomsCacheKey}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan catalog cache: %w", err)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	return nil
}

func availKey(start, end time.Time) string {
	return availCachePrefix + start.Format(DateFormat) + ":" + end.Format(DateFormat)
}

func (c *CachedSource) lookup(ctx context.Context, key string, dest any) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("catalog cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CachedSource) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("catalog cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
