package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const unreadTTL = time.Minute

// UnreadCache keeps per-user unread notification counts in redis. A nil
// *UnreadCache is valid and behaves as a permanent miss, so callers never
// branch on whether redis is configured.
type UnreadCache struct {
	rdb *redis.Client
}

func New(addr string) *UnreadCache {
	if addr == "" {
		return nil
	}
	return &UnreadCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(userID uint) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

func (c *UnreadCache) Get(ctx context.Context, userID uint) (int64, bool) {
	if c == nil {
		return 0, false
	}
	v, err := c.rdb.Get(ctx, key(userID)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *UnreadCache) Set(ctx context.Context, userID uint, count int64) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key(userID), count, unreadTTL)
}

func (c *UnreadCache) Invalidate(ctx context.Context, userID uint) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, key(userID))
}
