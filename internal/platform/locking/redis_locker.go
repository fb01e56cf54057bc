package locking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ErrNotObtained is returned by Acquire when another holder owns the key.
var ErrNotObtained = redislock.ErrNotObtained

// ReleaseFunc releases a held lock.
type ReleaseFunc func(ctx context.Context) error

// RedisLocker obtains short-lived exclusive locks backed by redis.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
}

// NewRedisLocker creates a locker whose locks expire after ttl unless released.
func NewRedisLocker(rdb *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(rdb),
		ttl:    ttl,
	}
}

// Acquire tries once to obtain key. It does not wait for a current holder.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	lock, err := l.client.Obtain(ctx, key, l.ttl, nil)
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, ErrNotObtained
		}
		return nil, fmt.Errorf("locking: obtain %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("locking: release %s: %w", key, err)
		}
		return nil
	}, nil
}

// DepreciationRunKey is the lock key guarding one workplace's batch run for a fiscal year.
func DepreciationRunKey(workplaceID string, fiscalYear int) string {
	return fmt.Sprintf("depreciation:%s:%d", workplaceID, fiscalYear)
}

// Connect opens a redis client and pings it, retrying with backoff up to attempts times.
func Connect(ctx context.Context, addr string, attempts int, logger *slog.Logger) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("locking: redis address cannot be empty")
	}
	if attempts < 1 {
		attempts = 1
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		PoolSize: 10,
	})

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			logger.Info("Connected to redis", slog.String("addr", addr), slog.Int("attempt", attempt))
			return rdb, nil
		}
		if attempt == attempts {
			break
		}
		sleep := time.Second * time.Duration(1<<min(attempt, 5))
		logger.Warn("Failed to connect to redis, retrying",
			slog.String("addr", addr),
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", sleep),
			slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
	_ = rdb.Close()
	return nil, fmt.Errorf("locking: connect to redis at %s: %w", addr, err)
}
