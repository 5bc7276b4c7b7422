package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeerajSh-16/ai-mock-interviews/pkg/model"
	"github.com/redis/go-redis/v9"
)

const genKey = "interviews:latest:gen"

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// LatestCache keeps short-lived copies of the latest-interviews listing.
// Keys embed a generation counter that Invalidate bumps, so a new interview
// makes every cached listing stale at once without scanning keys.
type LatestCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLatestCache(rdb *redis.Client, ttl time.Duration) *LatestCache {
	return &LatestCache{rdb: rdb, ttl: ttl}
}

func (c *LatestCache) key(ctx context.Context, userID string) string {
	gen, err := c.rdb.Get(ctx, genKey).Result()
	if err != nil {
		gen = "0"
	}
	return fmt.Sprintf("interviews:latest:%s:%s", gen, userID)
}

// GetLatest returns the cached listing for a user, if present.
func (c *LatestCache) GetLatest(ctx context.Context, userID string) ([]model.Interview, bool) {
	raw, err := c.rdb.Get(ctx, c.key(ctx, userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []model.Interview
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// SetLatest stores a listing. Failures are ignored; the cache is advisory.
func (c *LatestCache) SetLatest(ctx context.Context, userID string, items []model.Interview) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, c.key(ctx, userID), raw, c.ttl)
}

// Invalidate drops all cached listings by advancing the generation counter.
func (c *LatestCache) Invalidate(ctx context.Context) {
	c.rdb.Incr(ctx, genKey)
}
