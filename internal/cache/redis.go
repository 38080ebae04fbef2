package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis parses a redis:// URL and verifies the connection.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	res, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("Connected to Redis:", res)
	return client, nil
}

// RedisStore is a Store backed by Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// RedisCounter is a fixed-window Counter shared by every storefront instance.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter wraps a connected client.
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, period time.Duration) (int64, time.Time, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, err
	}

	// First request of the window sets its expiry.
	if count == 1 {
		if err := r.client.Expire(ctx, key, period).Err(); err != nil {
			return count, time.Time{}, err
		}
		return count, time.Now().Add(period), nil
	}

	ttl, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return count, time.Time{}, err
	}
	if ttl < 0 {
		// Key lost its expiry; start a fresh window.
		if err := r.client.Expire(ctx, key, period).Err(); err != nil {
			return count, time.Time{}, err
		}
		ttl = period
	}
	return count, time.Now().Add(ttl), nil
}
