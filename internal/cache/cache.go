// Package cache stores API responses for a limited time, on disk or in redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/where"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Store is a TTL-bound response cache. Misses and storage faults look the same to callers.
type Store interface {
	// Get decodes the cached value into target and reports whether it was found and fresh.
	Get(ctx context.Context, key string, target any) bool
	// Set stores value for ttl. A non-positive ttl stores nothing.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Key derives a stable cache key from its parts.
func Key(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.TrimSpace(p)
	}

	hash := sha256.Sum256([]byte(strings.Join(normalized, "\x00")))
	return hex.EncodeToString(hash[:])
}

// Open picks the backend from the configuration.
// Redis is used when an address is set and answers a ping, the file backend otherwise.
func Open(ctx context.Context) Store {
	addr := viper.GetString(key.CacheRedisAddr)
	if addr == "" {
		return NewFile(where.Responses())
	}

	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    viper.GetString(key.CacheRedisPassword),
		DB:          viper.GetInt(key.CacheRedisDB),
		DialTimeout: 2 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.WithFields(logrus.Fields{"addr": addr}).
			WithError(err).
			Warn("redis unavailable, falling back to file cache")
		_ = client.Close()
		return NewFile(where.Responses())
	}

	log.Infof("using redis response cache at %s", addr)
	return NewRedis(client)
}

// Nop caches nothing.
type Nop struct{}

func (Nop) Get(context.Context, string, any) bool                 { return false }
func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }
