package weather

import (
	"context"
	"fmt"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/clothing"
)

type weatherUseCase struct {
	forecastGateway api.ForecastGateway
	projector       *Projector
	advisor         *clothing.Advisor
	clock           func() time.Time
}

// NewWeatherUseCase wires the pipeline. A nil clock means time.Now.
func NewWeatherUseCase(forecastGateway api.ForecastGateway, projector *Projector, advisor *clothing.Advisor, clock func() time.Time) UseCase {
	if clock == nil {
		clock = time.Now
	}

	return &weatherUseCase{
		forecastGateway: forecastGateway,
		projector:       projector,
		advisor:         advisor,
		clock:           clock,
	}
}

func (uc *weatherUseCase) GetForecast(ctx context.Context, coordinates entity.Coordinates) (*entity.Forecast, error) {
	return uc.project(uc.forecastGateway.FetchForecast(ctx, coordinates))
}

func (uc *weatherUseCase) GetReport(ctx context.Context, name string, coordinates entity.Coordinates) (*model.WeatherReport, error) {
	forecast, err := uc.GetForecast(ctx, coordinates)
	if err != nil {
		return nil, err
	}
	return uc.report(name, coordinates, forecast), nil
}

func (uc *weatherUseCase) RefreshReport(ctx context.Context, name string, coordinates entity.Coordinates) (*model.WeatherReport, error) {
	forecast, err := uc.project(uc.forecastGateway.RefreshForecast(ctx, coordinates))
	if err != nil {
		return nil, err
	}
	return uc.report(name, coordinates, forecast), nil
}

func (uc *weatherUseCase) project(document *entity.ForecastDocument, err error) (*entity.Forecast, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	forecast := uc.projector.Project(document, uc.clock())
	return &forecast, nil
}

func (uc *weatherUseCase) report(name string, coordinates entity.Coordinates, forecast *entity.Forecast) *model.WeatherReport {
	feeling := clothing.FeelingFor(forecast.Current.Temperature)

	return &model.WeatherReport{
		Location:     name,
		Coordinates:  coordinates,
		Forecast:     *forecast,
		Feeling:      feeling,
		FeelingColor: feeling.Color(),
		Clothing:     uc.advisor.Recommend(forecast.Current),
	}
}
