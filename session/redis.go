package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "session_"

// RedisStore keeps sessions in Redis so they survive server restarts and are
// shared between replicas.
type RedisStore struct {
	inner *redis.Client
}

// NewRedisStore connects to the Redis instance specified by env.
func NewRedisStore() *RedisStore {
	return &RedisStore{
		inner: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
			Password: os.Getenv("REDIS_PASSWD"),
			DB:       0, // use default DB
		})}
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.inner.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return userID, err
}

func (r *RedisStore) Set(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return r.inner.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.inner.Del(ctx, sessionKey(sessionID)).Err()
}
