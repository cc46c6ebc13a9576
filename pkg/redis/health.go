package redis

import (
	"context"
	"strconv"
	"time"
)

const healthPingTimeout = 2 * time.Second

// HealthStatus uses the same UP/DOWN values as the service health report
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// Health pings the server and describes the connection
func (c *Client) Health(ctx context.Context) (HealthStatus, map[string]string) {
	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	start := time.Now()
	if err := c.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return StatusDown, details
	}

	details["latency"] = time.Since(start).String()
	stats := c.rdb.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return StatusUp, details
}
