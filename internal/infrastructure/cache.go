package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent or expired. A miss is not a
// failure; callers fall through to the store.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a TTL key-value store for low-churn reads. Implementations must
// be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisCache backs Cache with Redis. When the connection cannot be
// established the cache runs disabled: every Get misses and writes are
// dropped, so reads fall through to the store instead of failing.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache() *RedisCache {
	host := GetEnvAsString("REDIS_HOST", "localhost")
	port := GetEnvAsString("REDIS_PORT", "6379")
	password := GetEnvAsString("REDIS_PASSWORD", "")
	db := GetEnvAsInt("REDIS_DB", 0)

	// REDIS_URL wins over the individual variables when it parses.
	if redisURL := GetEnvAsString("REDIS_URL", ""); redisURL != "" {
		if opt, err := redis.ParseURL(redisURL); err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err != nil {
				log.Printf("Warning: Redis connection failed with REDIS_URL: %v", err)
			} else {
				log.Printf("Connected to Redis using REDIS_URL")
				return &RedisCache{client: client}
			}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
		log.Printf("Read cache disabled; all reads go to the remote store.")
		return &RedisCache{client: nil}
	}

	log.Printf("Connected to Redis at %s:%s", host, port)
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	if r.client == nil {
		return nil, ErrCacheMiss
	}
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return value, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if r.client == nil {
		return nil // cache disabled
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if r.client == nil {
		return nil // cache disabled
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
