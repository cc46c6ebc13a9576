package cache

import (
	"context"
	"sync"
	"time"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// MemoryForecastCache keeps Open-Meteo responses in process when Redis is disabled
type MemoryForecastCache struct {
	mutex   sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	response  *external.ForecastResponse
	expiresAt time.Time
}

var _ api.ForecastCache = (*MemoryForecastCache)(nil)

func NewMemoryForecastCache(ttl time.Duration) *MemoryForecastCache {
	if ttl <= 0 {
		ttl = DefaultForecastCacheTTL
	}
	return &MemoryForecastCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryForecastCache) Get(_ context.Context, key string) (*external.ForecastResponse, bool) {
	c.mutex.RLock()
	entry, found := c.entries[key]
	c.mutex.RUnlock()

	if !found {
		return nil, false
	}
	if !c.now().Before(entry.expiresAt) {
		c.mutex.Lock()
		if current, ok := c.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mutex.Unlock()
		return nil, false
	}

	log.Debug(msg.GetMessage("cache.hit", buildKey(key)))
	return entry.response, true
}

func (c *MemoryForecastCache) Set(_ context.Context, key string, response *external.ForecastResponse) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[key] = memoryEntry{response: response, expiresAt: c.now().Add(c.ttl)}
}
