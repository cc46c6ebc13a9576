package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// ForecastGateway fetches raw forecasts from the weather API
type ForecastGateway interface {
	// FetchForecast issues a single request for the given point, without retry.
	// Errors wrap ErrNetwork, ErrParse or ErrCancelled, or are *HTTPStatusError.
	FetchForecast(ctx context.Context, coordinates entity.Coordinates) (*entity.ForecastDocument, error)

	// RefreshForecast skips any cached copy, fetches the point and stores the result for later reads.
	RefreshForecast(ctx context.Context, coordinates entity.Coordinates) (*entity.ForecastDocument, error)
}
