package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// DefaultTTL bounds staleness of cached public content when an invalidation
// is missed.
const DefaultTTL = 10 * time.Minute

// Init connects to Redis. When REDIS_ADDR is unset the cache stays disabled
// and every lookup misses; the site works, just without the read cache.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, content cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis: %v, content cache disabled", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// Get returns the cached JSON payload for key, if present.
func Get(key string) (string, bool) {
	if Client == nil {
		return "", false
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores v as JSON under key.
func Set(key string, v interface{}) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := Client.Set(Ctx, key, data, DefaultTTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// Invalidate drops the given keys after an admin write.
func Invalidate(keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidate: %v", err)
	}
}
