// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	fieldCalls    = "calls"
	fieldFailures = "failures"

	// counterTTLGrace keeps a bucket key readable shortly after its window
	// has ended.
	counterTTLGrace = time.Minute

	redisConnectTimeout = 5 * time.Second
	redisScanCount      = 100
)

// RedisCounterStore is a [CounterStore] shared by every instance connected
// to the same Redis. Each bucket is a pair of INCR keys that expire after
// the bucket ends:
//
//	<prefix>usage:<service>:<window>:<bucket id>:calls
//	<prefix>usage:<service>:<window>:<bucket id>:failures
type RedisCounterStore struct {
	client *redis.Client
	prefix string
}

// NewRedisClient connects to the Redis named by cfg.URL and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("redis URL is required")
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}
	opts.DialTimeout = redisConnectTimeout

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return client, nil
}

func NewRedisCounterStore(client *redis.Client, prefix string) *RedisCounterStore {
	return &RedisCounterStore{client: client, prefix: prefix}
}

func (s *RedisCounterStore) key(service string, w models.Window, at time.Time, field string) string {
	return s.prefix + "usage:" + service + ":" + string(w) + ":" + bucketID(w, at) + ":" + field
}

func (s *RedisCounterStore) servicePattern(service string) string {
	return s.prefix + "usage:" + service + ":*"
}

// bucketTTL is the expiry of a key written at for window w.
func bucketTTL(w models.Window, at time.Time) time.Duration {
	return bucketEnd(w, at).Sub(at.UTC()) + counterTTLGrace
}

func (s *RedisCounterStore) Increment(ctx context.Context, service string, at time.Time, failed bool) (models.WindowCounts, error) {
	var delta int64
	if failed {
		delta = 1
	}

	calls := make([]*redis.IntCmd, len(models.Windows))
	failures := make([]*redis.IntCmd, len(models.Windows))

	pipe := s.client.TxPipeline()
	for i, w := range models.Windows {
		ttl := bucketTTL(w, at)
		callsKey := s.key(service, w, at, fieldCalls)
		failuresKey := s.key(service, w, at, fieldFailures)

		calls[i] = pipe.Incr(ctx, callsKey)
		failures[i] = pipe.IncrBy(ctx, failuresKey, delta)
		pipe.Expire(ctx, callsKey, ttl)
		pipe.Expire(ctx, failuresKey, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return models.WindowCounts{}, fmt.Errorf("%w: %w", ErrCounterStore, err)
	}

	var counts models.WindowCounts
	for i, w := range models.Windows {
		counts.Set(w, models.Counter{Calls: calls[i].Val(), Failures: failures[i].Val()})
	}

	return counts, nil
}

func (s *RedisCounterStore) Counts(ctx context.Context, service string, at time.Time) (models.WindowCounts, error) {
	keys := make([]string, 0, 2*len(models.Windows))
	for _, w := range models.Windows {
		keys = append(keys, s.key(service, w, at, fieldCalls), s.key(service, w, at, fieldFailures))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return models.WindowCounts{}, fmt.Errorf("%w: %w", ErrCounterStore, err)
	}

	var counts models.WindowCounts
	for i, w := range models.Windows {
		calls, err := parseCounter(values[2*i])
		if err != nil {
			return models.WindowCounts{}, err
		}
		failures, err := parseCounter(values[2*i+1])
		if err != nil {
			return models.WindowCounts{}, err
		}
		counts.Set(w, models.Counter{Calls: calls, Failures: failures})
	}

	return counts, nil
}

// Reset deletes every bucket key of service using SCAN so the server is
// never blocked by KEYS.
func (s *RedisCounterStore) Reset(ctx context.Context, service string) error {
	var cursor uint64
	pattern := s.servicePattern(service)

	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, redisScanCount).Result()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCounterStore, err)
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrCounterStore, err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// parseCounter converts an MGET reply item. Missing keys read as zero.
func parseCounter(v any) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad counter value %q", ErrCounterStore, val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unexpected counter type %T", ErrCounterStore, v)
	}
}
