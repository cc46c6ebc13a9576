package cache

import (
	"context"
	"testing"
	"time"

	"go-weather/internal/domain/model/external"
)

func TestMemoryForecastCacheExpiresEntries(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryForecastCache(15 * time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set(context.Background(), "52.5200,13.4100", &external.ForecastResponse{Timezone: "Europe/Berlin"})

	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{"fresh", 0, true},
		{"just before expiry", 15*time.Minute - time.Second, true},
		{"expired", 15 * time.Minute, false},
		{"stays gone", 16 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache.now = func() time.Time { return now.Add(tt.elapsed) }

			response, ok := cache.Get(context.Background(), "52.5200,13.4100")
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && response.Timezone != "Europe/Berlin" {
				t.Errorf("unexpected cached response %+v", response)
			}
		})
	}
}

func TestMemoryForecastCacheSetOverwritesAndExtends(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryForecastCache(0)
	cache.now = func() time.Time { return now }

	if cache.ttl != DefaultForecastCacheTTL {
		t.Errorf("expected default ttl, got %s", cache.ttl)
	}

	cache.Set(context.Background(), "key", &external.ForecastResponse{Timezone: "old"})
	now = now.Add(10 * time.Minute)
	cache.Set(context.Background(), "key", &external.ForecastResponse{Timezone: "new"})
	now = now.Add(10 * time.Minute)

	response, ok := cache.Get(context.Background(), "key")
	if !ok {
		t.Fatal("expected the rewritten entry to outlive the first ttl")
	}
	if response.Timezone != "new" {
		t.Errorf("expected overwritten response, got %q", response.Timezone)
	}
}
