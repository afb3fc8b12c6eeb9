package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// CacheJSON stores a value as JSON under key with a TTL.
func CacheJSON(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Client.Set(Ctx, key, data, ttl).Err()
}

// GetJSON loads a cached JSON value into dest. Returns false on a miss.
func GetJSON(key string, dest interface{}) (bool, error) {
	data, err := Client.Get(Ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}

// BlacklistToken marks an access token as revoked until it would have
// expired anyway.
func BlacklistToken(token string, ttl time.Duration) error {
	return Client.Set(Ctx, "blacklist:"+token, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the token was revoked via logout.
func IsTokenBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	exists, err := Client.Exists(Ctx, "blacklist:"+token).Result()
	return err == nil && exists > 0
}
