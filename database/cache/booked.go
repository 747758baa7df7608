// Package cache puts a short-lived Redis layer in front of booked-slot lookups.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"consultly/services/planner"
	"consultly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookedSlotCache wraps a planner.BookedSlotSource. Cache faults never fail a
// lookup; the source is consulted instead.
type BookedSlotCache struct {
	Source planner.BookedSlotSource
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func bookedKey(consultantID, date string) string {
	return utils.BookedCachePrefix + consultantID + ":" + date
}

// BookedMarkers serves from Redis when possible and fills it on a miss.
func (c *BookedSlotCache) BookedMarkers(ctx context.Context, consultantID, date string) ([]string, error) {
	key := bookedKey(consultantID, date)

	cached, err := c.Client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var markers []string
		if jsonErr := json.Unmarshal(cached, &markers); jsonErr == nil {
			return markers, nil
		}
		c.Logger.Warn("Discarding corrupt booked-slot cache entry", zap.String("key", key))
	case err != redis.Nil:
		c.Logger.Warn("Booked-slot cache read failed", zap.String("key", key), zap.Error(err))
	}

	markers, err := c.Source.BookedMarkers(ctx, consultantID, date)
	if err != nil {
		return nil, err
	}

	if data, mErr := json.Marshal(markers); mErr == nil {
		if sErr := c.Client.Set(ctx, key, data, c.TTL).Err(); sErr != nil {
			c.Logger.Warn("Booked-slot cache write failed", zap.String("key", key), zap.Error(sErr))
		}
	}
	return markers, nil
}

// Invalidate drops the cached list for a consultant's date.
func (c *BookedSlotCache) Invalidate(ctx context.Context, consultantID, date string) {
	if err := c.Client.Del(ctx, bookedKey(consultantID, date)).Err(); err != nil {
		c.Logger.Warn("Booked-slot cache invalidation failed",
			zap.String("consultantId", consultantID), zap.String("date", date), zap.Error(err))
	}
}
