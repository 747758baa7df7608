package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	markers []string
	err     error
	calls   int
}

func (s *stubSource) BookedMarkers(context.Context, string, string) ([]string, error) {
	s.calls++
	return s.markers, s.err
}

// unreachableRedis points at a port nothing listens on so every command fails fast.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestBookedSlotCache_FallsThroughWhenRedisDown(t *testing.T) {
	src := &stubSource{markers: []string{"09:00", "10:30"}}
	c := &BookedSlotCache{Source: src, Client: unreachableRedis(), TTL: time.Minute, Logger: zap.NewNop()}

	got, err := c.BookedMarkers(context.Background(), "c1", "2026-10-16")

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:30"}, got)
	assert.Equal(t, 1, src.calls)
}

func TestBookedSlotCache_PropagatesSourceError(t *testing.T) {
	boom := errors.New("mongo down")
	c := &BookedSlotCache{Source: &stubSource{err: boom}, Client: unreachableRedis(), Logger: zap.NewNop()}

	_, err := c.BookedMarkers(context.Background(), "c1", "2026-10-16")

	assert.ErrorIs(t, err, boom)
}

func TestBookedSlotCache_InvalidateToleratesRedisDown(t *testing.T) {
	c := &BookedSlotCache{Client: unreachableRedis(), Logger: zap.NewNop()}
	assert.NotPanics(t, func() { c.Invalidate(context.Background(), "c1", "2026-10-16") })
}

func TestBookedKey(t *testing.T) {
	assert.Equal(t, "booked:c1:2026-10-16", bookedKey("c1", "2026-10-16"))
}
