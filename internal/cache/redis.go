package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisPrefix = constant.App + ":response:"

// Redis keeps entries in a redis server and lets it expire them.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps a connected client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string, target any) bool {
	cached, err := r.client.Get(ctx, redisPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("failed to read from redis")
		}
		return false
	}

	if err := json.Unmarshal(cached, target); err != nil {
		log.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("failed to unmarshal cached response")
		return false
	}
	return true
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, redisPrefix+key, data, ttl).Err()
}
