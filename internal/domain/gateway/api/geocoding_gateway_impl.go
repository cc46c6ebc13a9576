package api

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"golang.org/x/time/rate"
)

const (
	searchPath       = "/search"
	searchLimit      = "10"
	unknownPlaceName = "Unknown"

	DefaultUserAgent        = "WeatherApp/1.0 (Go)"
	DefaultMinInterval      = 2 * time.Second
	DefaultTeapotBackoff    = 3 * time.Second
	DefaultGeocodingTimeout = 15 * time.Second

	// spacingMargin pads the limiter interval so timer jitter never lands a request
	// slightly inside MinInterval of the previous one.
	spacingMargin = 10 * time.Millisecond
)

// GeocodingSettings tunes the politeness policy towards Nominatim. Zero values take the defaults.
type GeocodingSettings struct {
	UserAgent     string
	MinInterval   time.Duration
	TeapotBackoff time.Duration
	Timeout       time.Duration
}

// geocodingGatewayImpl implements the GeocodingGateway interface against Nominatim.
// One limiter per instance spaces every outbound request, so share the instance process-wide.
type geocodingGatewayImpl struct {
	httpClient    *http.Client
	limiter       *rate.Limiter
	teapotBackoff time.Duration
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, settings GeocodingSettings, clientOptions http.ClientOptions) GeocodingGateway {
	if settings.UserAgent == "" {
		settings.UserAgent = DefaultUserAgent
	}
	if settings.MinInterval <= 0 {
		settings.MinInterval = DefaultMinInterval
	}
	if settings.TeapotBackoff <= 0 {
		settings.TeapotBackoff = DefaultTeapotBackoff
	}
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultGeocodingTimeout
	}

	headers := make(map[string]string, len(clientOptions.DefaultHeaders)+2)
	for key, value := range clientOptions.DefaultHeaders {
		headers[key] = value
	}
	headers["User-Agent"] = settings.UserAgent
	headers["Accept"] = "application/json"
	clientOptions.DefaultHeaders = headers
	clientOptions.ReadTimeout = settings.Timeout

	return &geocodingGatewayImpl{
		httpClient:    http.NewHttpClient(baseUrl, clientOptions),
		limiter:       rate.NewLimiter(rate.Every(settings.MinInterval+spacingMargin), 1),
		teapotBackoff: settings.TeapotBackoff,
	}
}

// Search waits for its slot in the request spacing, then queries the search endpoint
func (g *geocodingGatewayImpl) Search(ctx context.Context, query string) []entity.Place {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Place{}
	}

	if err := g.limiter.Wait(ctx); err != nil {
		log.Debug(msg.GetMessage("geocoding.cancelled"))
		return []entity.Place{}
	}

	params := map[string]string{
		"q":              query,
		"format":         "json",
		"limit":          searchLimit,
		"addressdetails": "1",
	}

	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(searchPath).
		WithQueryParams(params).
		WithSuccessResp(&[]external.NominatimPlaceDTO{}).
		Execute()

	if err != nil {
		g.handleFailure(ctx, err)
		return []entity.Place{}
	}

	if status != 200 {
		log.Warn(msg.GetMessage("geocoding.unexpected-status", status))
		return []entity.Place{}
	}

	places := toPlaces(*successResp.(*[]external.NominatimPlaceDTO))
	log.Debug(msg.GetMessage("geocoding.results", query, len(places)))
	return places
}

// handleFailure logs the failure and applies the teapot backoff
func (g *geocodingGatewayImpl) handleFailure(ctx context.Context, err error) {
	var statusErr *http.StatusError
	var decodeErr *http.DecodeError

	switch {
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		log.Debug(msg.GetMessage("geocoding.cancelled"))
	case errors.As(err, &statusErr) && statusErr.StatusCode == 418:
		log.Warn(msg.GetMessage("geocoding.rate-limited-teapot", g.teapotBackoff.String()))
		sleep(ctx, g.teapotBackoff)
	case errors.As(err, &statusErr) && statusErr.StatusCode == 429:
		log.Warn(msg.GetMessage("geocoding.rate-limited"))
	case errors.As(err, &statusErr):
		log.Warn(msg.GetMessage("geocoding.unexpected-status", statusErr.StatusCode))
	case errors.As(err, &decodeErr):
		log.Warn(msg.GetMessage("geocoding.decode-failed", decodeErr.Err.Error()))
	default:
		log.Warn(msg.GetMessage("geocoding.failed", err.Error()))
	}
}

func sleep(ctx context.Context, duration time.Duration) {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// toPlaces drops rows whose coordinates do not parse
func toPlaces(rows []external.NominatimPlaceDTO) []entity.Place {
	places := make([]entity.Place, 0, len(rows))
	for _, row := range rows {
		latitude, err := strconv.ParseFloat(strings.TrimSpace(row.Lat), 64)
		if err != nil {
			continue
		}
		longitude, err := strconv.ParseFloat(strings.TrimSpace(row.Lon), 64)
		if err != nil {
			continue
		}

		place := entity.Place{
			Name:        placeName(row),
			Coordinates: entity.Coordinates{Latitude: latitude, Longitude: longitude},
			DisplayName: row.DisplayName,
		}
		if row.Address != nil {
			place.Country = valueOf(row.Address.Country)
		}
		places = append(places, place)
	}
	return places
}

// placeName picks name, then city, town, village, then the first segment of display_name
func placeName(row external.NominatimPlaceDTO) string {
	candidates := []*string{row.Name}
	if row.Address != nil {
		candidates = append(candidates, row.Address.City, row.Address.Town, row.Address.Village)
	}

	for _, candidate := range candidates {
		if value := valueOf(candidate); value != "" {
			return value
		}
	}

	if segment := strings.TrimSpace(strings.Split(row.DisplayName, ",")[0]); segment != "" {
		return segment
	}
	return unknownPlaceName
}

func valueOf(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
