package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository is the cache used for catalog reads that do not need to be fresh
// to the millisecond (categories, top foods).
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository. A nil client turns every call
// into a cache miss / no-op so the API still runs without Redis.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// Get retrieves a value by key; a missing key returns goredis.Nil
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", goredis.Nil
	}
	return r.client.Get(ctx, key).Result()
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, keys ...string) error {
	if r.client == nil || len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// GetJSON decodes a cached JSON value into dest. found is false on a miss.
func (r *redis) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.Get(ctx, key)
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redis) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.SetWithTTL(ctx, key, string(b), ttl)
}
