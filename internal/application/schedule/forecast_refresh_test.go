package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/usecase/clothing"
	"go-weather/internal/domain/usecase/weather"
	httpclient "go-weather/pkg/http"
)

const refreshForecastBody = `{
  "latitude": 52.52,
  "longitude": 13.41,
  "timezone": "Europe/Berlin",
  "utc_offset_seconds": 3600,
  "current": {"time": "2024-01-15T14:00", "temperature_2m": TEMPERATURE, "weathercode": 3},
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

func TestRefreshAllUpdatesWhatLaterReadsReturn(t *testing.T) {
	var temperature atomic.Value
	temperature.Store("3.4")
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(strings.Replace(refreshForecastBody, "TEMPERATURE", temperature.Load().(string), 1)))
	}))
	defer server.Close()

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Date(2024, 1, 15, 14, 30, 0, 0, berlin)

	gateway := api.NewCachedForecastGateway(server.URL, httpclient.ClientOptions{}, cache.NewMemoryForecastCache(time.Hour))
	weatherUseCase := weather.NewWeatherUseCase(gateway, weather.NewProjector(weather.MessageLabels()), clothing.NewAdvisor(),
		func() time.Time { return now })
	locations := &stubLocationUseCase{locations: []entity.SavedLocation{{ID: "berlin", Name: "Berlin", Latitude: 52.52, Longitude: 13.41}}}
	scheduler := NewForecastScheduler(weatherUseCase, locations, ForecastSchedulerConfig{})

	read := func() int {
		t.Helper()
		report, err := weatherUseCase.GetReport(context.Background(), "Berlin", entity.Coordinates{Latitude: 52.52, Longitude: 13.41})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return report.Forecast.Current.Temperature
	}

	if got := read(); got != 3 {
		t.Fatalf("expected 3 degrees on the first read, got %d", got)
	}

	temperature.Store("11.8")
	if got := read(); got != 3 {
		t.Fatalf("expected the cached 3 degrees before a refresh, got %d", got)
	}

	summary := scheduler.RefreshAll(context.Background())
	if summary.Total != 1 || summary.Refreshed != 1 || summary.Failed != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	if got := read(); got != 12 {
		t.Errorf("expected the refreshed 12 degrees after the run, got %d", got)
	}
	if hits.Load() != 2 {
		t.Errorf("expected the first read and the refresh to reach the API, got %d calls", hits.Load())
	}
}
