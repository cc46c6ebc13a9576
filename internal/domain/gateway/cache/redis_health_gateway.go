package cache

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

// HealthCacheGateway reports the state of the response cache
type HealthCacheGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthCacheGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	status, details := gateway.client.Health(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(status),
		Details: details,
	}
}
