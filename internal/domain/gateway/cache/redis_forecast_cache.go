package cache

import (
	"context"
	"time"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"go.uber.org/zap"
)

const (
	forecastCacheName       = "forecast"
	DefaultForecastCacheTTL = 15 * time.Minute
)

// RedisForecastCache keeps Open-Meteo responses in Redis under forecast::<lat>,<lon>
type RedisForecastCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ api.ForecastCache = (*RedisForecastCache)(nil)

func NewRedisForecastCache(client *redis.Client, ttl time.Duration) *RedisForecastCache {
	if ttl <= 0 {
		ttl = DefaultForecastCacheTTL
	}
	return &RedisForecastCache{client: client, ttl: ttl}
}

func (c *RedisForecastCache) Get(ctx context.Context, key string) (*external.ForecastResponse, bool) {
	var response external.ForecastResponse
	found, err := c.client.GetJSON(ctx, buildKey(key), &response)
	if err != nil {
		log.Warn(msg.GetMessage("cache.read-failed", buildKey(key)), zap.Error(err))
		return nil, false
	}
	if found {
		log.Debug(msg.GetMessage("cache.hit", buildKey(key)))
	}
	return &response, found
}

func (c *RedisForecastCache) Set(ctx context.Context, key string, response *external.ForecastResponse) {
	if err := c.client.SetJSON(ctx, buildKey(key), response, c.ttl); err != nil {
		log.Warn(msg.GetMessage("cache.write-failed", buildKey(key)), zap.Error(err))
	}
}

func buildKey(key string) string {
	return forecastCacheName + "::" + key
}
