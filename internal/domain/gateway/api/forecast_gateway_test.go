package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	httpclient "go-weather/pkg/http"
)

const berlinForecast = `{
  "latitude": 52.52,
  "longitude": 13.41,
  "timezone": "Europe/Berlin",
  "utc_offset_seconds": 3600,
  "current": {"time": "2024-01-15T14:00", "temperature_2m": 3.4, "weathercode": 3},
  "hourly": {
    "time": ["2024-01-15T14:00", "2024-01-15T15:00"],
    "temperature_2m": [3.4, 2.9],
    "weathercode": [3, 61]
  },
  "daily": {
    "time": ["2024-01-15", "2024-01-16"],
    "weathercode": [3, 71],
    "temperature_2m_max": [4.2, 1.0],
    "temperature_2m_min": [-1.5, -3.0],
    "sunrise": ["2024-01-15T08:10", "2024-01-16T08:09"],
    "sunset": ["2024-01-15T16:25", "2024-01-16T16:27"]
  }
}`

func newForecastServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchForecastBuildsDocument(t *testing.T) {
	var query map[string][]string
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(berlinForecast))
	}))
	defer server.Close()

	gateway := NewForecastGateway(server.URL, httpclient.ClientOptions{ReadTimeout: -1})
	doc, err := gateway.FetchForecast(context.Background(), entity.Coordinates{Latitude: 52.52, Longitude: 13.41})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/v1/forecast" {
		t.Errorf("expected path /v1/forecast, got %s", path)
	}
	expectedQuery := map[string]string{
		"latitude":      "52.52",
		"longitude":     "13.41",
		"current":       "temperature_2m,weathercode",
		"hourly":        "temperature_2m,weathercode",
		"daily":         "weathercode,temperature_2m_max,temperature_2m_min,sunrise,sunset",
		"timezone":      "auto",
		"forecast_days": "7",
	}
	for key, want := range expectedQuery {
		if got := query[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query %s = %v, want %s", key, got, want)
		}
	}

	if doc.Timezone != "Europe/Berlin" || doc.Location.String() != "Europe/Berlin" {
		t.Errorf("unexpected timezone %s / %s", doc.Timezone, doc.Location)
	}
	if doc.Current.Temperature != 3.4 || doc.Current.WeatherCode != 3 || doc.Current.Time != "2024-01-15T14:00" {
		t.Errorf("unexpected current record %+v", doc.Current)
	}
	if len(doc.Hourly) != 2 || doc.Hourly[1].WeatherCode != 61 || doc.Hourly[1].Temperature != 2.9 {
		t.Errorf("unexpected hourly records %+v", doc.Hourly)
	}
	if len(doc.Daily) != 2 {
		t.Fatalf("expected 2 daily records, got %d", len(doc.Daily))
	}
	want := entity.DailyRecord{
		Date:           "2024-01-16",
		WeatherCode:    71,
		MaxTemperature: 1.0,
		MinTemperature: -3.0,
		Sunrise:        "2024-01-16T08:09",
		Sunset:         "2024-01-16T16:27",
	}
	if doc.Daily[1] != want {
		t.Errorf("daily[1] = %+v, want %+v", doc.Daily[1], want)
	}
}

func TestFetchForecastParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "hourly arrays differ in length",
			body: `{"timezone":"UTC","current":{"time":"2024-01-15T14:00","temperature_2m":1,"weathercode":0},
				"hourly":{"time":["2024-01-15T14:00","2024-01-15T15:00"],"temperature_2m":[1],"weathercode":[0,0]},
				"daily":{"time":[],"weathercode":[],"temperature_2m_max":[],"temperature_2m_min":[],"sunrise":[],"sunset":[]}}`,
		},
		{
			name: "missing daily section",
			body: `{"timezone":"UTC","current":{"time":"2024-01-15T14:00","temperature_2m":1,"weathercode":0},
				"hourly":{"time":[],"temperature_2m":[],"weathercode":[]}}`,
		},
		{
			name: "incomplete current section",
			body: `{"timezone":"UTC","current":{"time":"2024-01-15T14:00"},
				"hourly":{"time":[],"temperature_2m":[],"weathercode":[]},
				"daily":{"time":[],"weathercode":[],"temperature_2m_max":[],"temperature_2m_min":[],"sunrise":[],"sunset":[]}}`,
		},
		{
			name: "null daily temperature",
			body: `{"timezone":"UTC","current":{"time":"2024-01-15T14:00","temperature_2m":1,"weathercode":0},
				"hourly":{"time":[],"temperature_2m":[],"weathercode":[]},
				"daily":{"time":["2024-01-15"],"weathercode":[0],"temperature_2m_max":[null],"temperature_2m_min":[1],"sunrise":[""],"sunset":[""]}}`,
		},
		{
			name: "string where a number is required",
			body: `{"timezone":"UTC","current":{"time":"2024-01-15T14:00","temperature_2m":"warm","weathercode":0}}`,
		},
		{
			name: "not json",
			body: `<html>maintenance</html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newForecastServer(t, http.StatusOK, tt.body)
			gateway := NewForecastGateway(server.URL, httpclient.ClientOptions{})

			_, err := gateway.FetchForecast(context.Background(), entity.Coordinates{})
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestFetchForecastStatusErrors(t *testing.T) {
	tests := []struct {
		status      int
		body        string
		rateLimited bool
		reason      string
	}{
		{http.StatusBadRequest, `{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`, false, "Latitude must be in range of -90 to 90°."},
		{http.StatusTooManyRequests, `{"error":true,"reason":"Too many requests"}`, true, "Too many requests"},
		{http.StatusTeapot, ``, true, ""},
		{http.StatusBadGateway, `bad gateway`, false, ""},
	}

	for _, tt := range tests {
		server := newForecastServer(t, tt.status, tt.body)
		gateway := NewForecastGateway(server.URL, httpclient.ClientOptions{})

		_, err := gateway.FetchForecast(context.Background(), entity.Coordinates{})

		var statusErr *HTTPStatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("status %d: expected *HTTPStatusError, got %v", tt.status, err)
		}
		if statusErr.StatusCode != tt.status {
			t.Errorf("expected status %d, got %d", tt.status, statusErr.StatusCode)
		}
		if statusErr.RateLimited() != tt.rateLimited {
			t.Errorf("status %d: RateLimited() = %v", tt.status, statusErr.RateLimited())
		}
		if statusErr.Reason != tt.reason {
			t.Errorf("status %d: reason %q, want %q", tt.status, statusErr.Reason, tt.reason)
		}
	}
}

func TestFetchForecastCancelled(t *testing.T) {
	server := newForecastServer(t, http.StatusOK, berlinForecast)
	gateway := NewForecastGateway(server.URL, httpclient.ClientOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.FetchForecast(ctx, entity.Coordinates{})
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

func TestFetchForecastNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	gateway := NewForecastGateway(url, httpclient.ClientOptions{})
	_, err := gateway.FetchForecast(context.Background(), entity.Coordinates{})
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}

func TestResolveLocation(t *testing.T) {
	if location := resolveLocation("Asia/Amman", 10800); location.String() != "Asia/Amman" {
		t.Errorf("expected Asia/Amman, got %s", location)
	}

	location := resolveLocation("Mars/Olympus_Mons", 3600)
	if location.String() != "Mars/Olympus_Mons" {
		t.Errorf("expected fixed zone named after the timezone, got %s", location)
	}
	_, offset := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC).In(location).Zone()
	if offset != 3600 {
		t.Errorf("expected offset 3600, got %d", offset)
	}

	if location := resolveLocation("", 0); location.String() != "UTC" {
		t.Errorf("expected UTC, got %s", location)
	}
}

type memoryForecastCache struct {
	entries map[string]*external.ForecastResponse
	sets    int
}

func newMemoryForecastCache() *memoryForecastCache {
	return &memoryForecastCache{entries: map[string]*external.ForecastResponse{}}
}

func (c *memoryForecastCache) Get(_ context.Context, key string) (*external.ForecastResponse, bool) {
	response, ok := c.entries[key]
	return response, ok
}

func (c *memoryForecastCache) Set(_ context.Context, key string, response *external.ForecastResponse) {
	c.sets++
	c.entries[key] = response
}

func TestFetchForecastServesRepeatedPointsFromCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(berlinForecast))
	}))
	defer server.Close()

	cache := newMemoryForecastCache()
	gateway := NewCachedForecastGateway(server.URL, httpclient.ClientOptions{}, cache)
	berlin := entity.Coordinates{Latitude: 52.52, Longitude: 13.41}

	first, err := gateway.FetchForecast(context.Background(), berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gateway.FetchForecast(context.Background(), berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hits.Load() != 1 {
		t.Errorf("expected one API call, got %d", hits.Load())
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write, got %d", cache.sets)
	}
	if _, ok := cache.entries["52.5200,13.4100"]; !ok {
		t.Errorf("expected entry under the rounded key, got %v", cache.entries)
	}
	if second.Current != first.Current || len(second.Daily) != len(first.Daily) || second.Location.String() != "Europe/Berlin" {
		t.Errorf("cached document differs: %+v vs %+v", second, first)
	}

	if _, err = gateway.FetchForecast(context.Background(), entity.Coordinates{Latitude: 48.85, Longitude: 2.35}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("expected another point to reach the API, got %d calls", hits.Load())
	}
}

func TestFetchForecastDoesNotCacheFailures(t *testing.T) {
	server := newForecastServer(t, http.StatusBadRequest, `{"error":true,"reason":"Latitude must be in range of -90 to 90"}`)

	cache := newMemoryForecastCache()
	gateway := NewCachedForecastGateway(server.URL, httpclient.ClientOptions{}, cache)

	if _, err := gateway.FetchForecast(context.Background(), entity.Coordinates{}); err == nil {
		t.Fatal("expected an error")
	}
	if cache.sets != 0 {
		t.Errorf("failed responses must not be cached, got %d writes", cache.sets)
	}
}

func TestFetchForecastRefetchesInvalidCacheEntries(t *testing.T) {
	server := newForecastServer(t, http.StatusOK, berlinForecast)

	cache := newMemoryForecastCache()
	cache.entries["52.5200,13.4100"] = &external.ForecastResponse{Timezone: "Europe/Berlin"}
	gateway := NewCachedForecastGateway(server.URL, httpclient.ClientOptions{}, cache)

	doc, err := gateway.FetchForecast(context.Background(), entity.Coordinates{Latitude: 52.52, Longitude: 13.41})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Hourly) != 2 || cache.sets != 1 {
		t.Errorf("expected a fresh document to replace the entry, got %d hours and %d writes", len(doc.Hourly), cache.sets)
	}
}

func TestRefreshForecastOverwritesCachedEntry(t *testing.T) {
	var temperature atomic.Value
	temperature.Store("3.4")
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		body := strings.Replace(berlinForecast, `"temperature_2m": 3.4, "weathercode": 3}`,
			`"temperature_2m": `+temperature.Load().(string)+`, "weathercode": 3}`, 1)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	cache := newMemoryForecastCache()
	gateway := NewCachedForecastGateway(server.URL, httpclient.ClientOptions{}, cache)
	berlin := entity.Coordinates{Latitude: 52.52, Longitude: 13.41}

	if _, err := gateway.FetchForecast(context.Background(), berlin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	temperature.Store("11.8")

	cached, err := gateway.FetchForecast(context.Background(), berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached.Current.Temperature != 3.4 {
		t.Fatalf("expected the cached reading before a refresh, got %v", cached.Current.Temperature)
	}

	refreshed, err := gateway.RefreshForecast(context.Background(), berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.Current.Temperature != 11.8 {
		t.Errorf("expected the refresh to reach the API, got %v", refreshed.Current.Temperature)
	}

	later, err := gateway.FetchForecast(context.Background(), berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if later.Current.Temperature != 11.8 {
		t.Errorf("expected reads after a refresh to see it, got %v", later.Current.Temperature)
	}
	if hits.Load() != 2 || cache.sets != 2 {
		t.Errorf("expected 2 API calls and 2 cache writes, got %d and %d", hits.Load(), cache.sets)
	}
}

func TestRefreshForecastKeepsEntryOnFailure(t *testing.T) {
	server := newForecastServer(t, http.StatusServiceUnavailable, `{"error":true,"reason":"busy"}`)

	cache := newMemoryForecastCache()
	stale := &external.ForecastResponse{Timezone: "Europe/Berlin"}
	cache.entries["52.5200,13.4100"] = stale
	gateway := NewCachedForecastGateway(server.URL, httpclient.ClientOptions{}, cache)

	if _, err := gateway.RefreshForecast(context.Background(), entity.Coordinates{Latitude: 52.52, Longitude: 13.41}); err == nil {
		t.Fatal("expected an error")
	}
	if cache.sets != 0 || cache.entries["52.5200,13.4100"] != stale {
		t.Errorf("a failed refresh must leave the cache alone, got %d writes", cache.sets)
	}
}

func TestForecastCacheKey(t *testing.T) {
	tests := []struct {
		coordinates entity.Coordinates
		want        string
	}{
		{entity.Coordinates{Latitude: 52.52, Longitude: 13.41}, "52.5200,13.4100"},
		{entity.Coordinates{Latitude: -33.86882, Longitude: 151.20929}, "-33.8688,151.2093"},
		{entity.Coordinates{}, "0.0000,0.0000"},
	}

	for _, tt := range tests {
		if got := ForecastCacheKey(tt.coordinates); got != tt.want {
			t.Errorf("ForecastCacheKey(%+v) = %q, want %q", tt.coordinates, got, tt.want)
		}
	}
}
