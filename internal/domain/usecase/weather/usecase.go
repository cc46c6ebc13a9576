package weather

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type UseCase interface {
	// GetForecast fetches the forecast of a point and projects it at the current instant
	GetForecast(ctx context.Context, coordinates entity.Coordinates) (*entity.Forecast, error)

	// GetReport adds the temperature feeling and clothing advice to the forecast of a named location
	GetReport(ctx context.Context, name string, coordinates entity.Coordinates) (*model.WeatherReport, error)

	// RefreshReport is GetReport from a forecast fetched past the cache, which then holds it for later reads
	RefreshReport(ctx context.Context, name string, coordinates entity.Coordinates) (*model.WeatherReport, error)
}
