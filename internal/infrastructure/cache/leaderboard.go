package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

const (
	leaderboardKey = "bestsharers:top"
	leaderboardTTL = 10 * time.Minute
)

// LeaderboardCache keeps the best-sharers snapshot in Redis. It fails safe:
// when Redis is down or the client is nil, reads behave like a miss and
// writes are no-ops, so the best_sharers table stays the source of truth.
type LeaderboardCache struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

// Get returns the cached snapshot, or (nil, false) on miss.
func (c *LeaderboardCache) Get(ctx context.Context) ([]*domain.BestSharer, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		return nil, false
	}
	var sharers []*domain.BestSharer
	if err := json.Unmarshal(raw, &sharers); err != nil {
		return nil, false
	}
	return sharers, true
}

// Set replaces the cached snapshot, ignoring Redis errors.
func (c *LeaderboardCache) Set(ctx context.Context, sharers []*domain.BestSharer) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(sharers)
	if err != nil {
		return
	}
	c.client.Set(ctx, leaderboardKey, raw, leaderboardTTL)
}

// Invalidate drops the cached snapshot.
func (c *LeaderboardCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, leaderboardKey)
}
