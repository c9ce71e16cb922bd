package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV is an alternative key-value backend for running several storefront
// processes against one Redis. Keys are namespaced with prefix.
type RedisKV struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func OpenRedis(url, prefix string) (*RedisKV, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	r := NewRedisKV(redis.NewClient(opt), prefix)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.client.Ping(ctx).Err(); err != nil {
		_ = r.client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return r, nil
}

func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: prefix, timeout: 2 * time.Second}
}

func (r *RedisKV) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisKV) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisKV) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *RedisKV) Close() error { return r.client.Close() }
