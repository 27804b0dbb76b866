package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter keeps snapshots in redis, useful when several local tools
// want to observe the same client state. Keys are namespaced to avoid
// clashing with other tenants of the instance.
type RedisAdapter struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisAdapter(rdb *redis.Client, prefix string) *RedisAdapter {
	if prefix == "" {
		prefix = "storefront:"
	}
	return &RedisAdapter{rdb: rdb, prefix: prefix}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) (string, bool) {
	res, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		// unreachable instance reads as absence, per the adapter contract
		return "", false
	}
	return res, true
}

func (r *RedisAdapter) Set(ctx context.Context, key, value string) error {
	return r.rdb.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.prefix+key).Err()
}
