package rdx

import (
	"log"
	"os"
	"time"

	"voyago/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// --- Key/value helpers ---

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxSetWithTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHget(hash, field string) (string, error) {
	return Conn.HGet(globals.Ctx, hash, field).Result()
}

// InvalidateCache drops a cached catalog entry, logging failures instead
// of surfacing them to the caller.
func InvalidateCache(key string) {
	if err := RdxDel(key); err != nil {
		log.Printf("Failed to invalidate cache key %s: %v", key, err)
	}
}
