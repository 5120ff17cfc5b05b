package ratelimit

import (
	"context"
	"time"

	"newsguard/internal/domain/service"
	"newsguard/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps fixed-window counters in redis so several processes share them.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

var _ service.CounterStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client; keys are namespaced with prefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

// Increment runs SET NX PX, INCR and PTTL in one MULTI/EXEC. The first hit of
// a window creates the key with its expiry; INCR keeps the TTL.
func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (service.Window, error) {
	fullKey := s.prefix + key

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, fullKey, 0, window)
		incr = pipe.Incr(ctx, fullKey)
		pttl = pipe.PTTL(ctx, fullKey)

		return nil
	})
	if err != nil {
		return service.Window{}, errors.Wrap(err, "redis rate-limit increment")
	}

	ttl := pttl.Val()
	if ttl <= 0 {
		// -1 (no expiry) or -2 (gone); fall back to a full window.
		ttl = window
	}

	return service.Window{
		Count:   incr.Val(),
		ResetAt: s.now().Add(ttl),
	}, nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
