package api

import (
	"context"
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

// ForecastCache stores validated forecast responses. Implementations treat their own failures as misses.
type ForecastCache interface {
	Get(ctx context.Context, key string) (*external.ForecastResponse, bool)
	Set(ctx context.Context, key string, response *external.ForecastResponse)
}

// ForecastCacheKey identifies a point to about 11 m
func ForecastCacheKey(coordinates entity.Coordinates) string {
	return fmt.Sprintf("%.4f,%.4f", coordinates.Latitude, coordinates.Longitude)
}
