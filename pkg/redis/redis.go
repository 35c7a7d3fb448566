package redis

import (
	"context"
	"sync"
	"time"

	"rankcast/pkg/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client with result-unwrapping helpers.
// It backs the second leaderboard cache tier and the finalize fact channel.
type RedisClient struct {
	*redis.Client
}

var (
	once     sync.Once
	instance *RedisClient
)

// GetClient returns the process-wide client, creating it on first use.
func GetClient() *RedisClient {
	once.Do(func() {
		instance = &RedisClient{
			Client: redis.NewClient(&redis.Options{
				Addr:         config.Redis.Host + ":" + config.Redis.Port,
				Password:     config.Redis.Password,
				DB:           0,
				MaxRetries:   3,
				PoolSize:     100,
				MinIdleConns: 10,
				PoolTimeout:  30 * time.Second,
			}),
		}
	})
	return instance
}

// Close the underlying connection pool.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Get returns the string value stored under the key.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Set stores a value with the given TTL.
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key, ignoring whether it existed.
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}
