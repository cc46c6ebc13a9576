package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const (
	forecastPath  = "/v1/forecast"
	currentFields = "temperature_2m,weathercode"
	hourlyFields  = "temperature_2m,weathercode"
	dailyFields   = "weathercode,temperature_2m_max,temperature_2m_min,sunrise,sunset"
	forecastDays  = "7"
)

// forecastGatewayImpl implements the ForecastGateway interface against Open-Meteo
type forecastGatewayImpl struct {
	httpClient *http.Client
	cache      ForecastCache
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	return NewCachedForecastGateway(baseUrl, clientOptions, nil)
}

// NewCachedForecastGateway is NewForecastGateway with a response cache in front of the API. A nil cache disables caching.
func NewCachedForecastGateway(baseUrl string, clientOptions http.ClientOptions, cache ForecastCache) ForecastGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &forecastGatewayImpl{
		httpClient: httpClient,
		cache:      cache,
	}
}

// FetchForecast gets the current, hourly and 7 day forecast for a point
func (f *forecastGatewayImpl) FetchForecast(ctx context.Context, coordinates entity.Coordinates) (*entity.ForecastDocument, error) {
	key := ForecastCacheKey(coordinates)
	if f.cache != nil {
		if cached, ok := f.cache.Get(ctx, key); ok {
			if doc, err := toForecastDocument(cached); err == nil {
				return doc, nil
			}
		}
	}

	return f.RefreshForecast(ctx, coordinates)
}

// RefreshForecast always asks the API and overwrites the cached entry on success
func (f *forecastGatewayImpl) RefreshForecast(ctx context.Context, coordinates entity.Coordinates) (*entity.ForecastDocument, error) {
	response, err := f.request(ctx, coordinates)
	if err != nil {
		return nil, err
	}

	doc, err := toForecastDocument(response)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		f.cache.Set(ctx, ForecastCacheKey(coordinates), response)
	}
	return doc, nil
}

func (f *forecastGatewayImpl) request(ctx context.Context, coordinates entity.Coordinates) (*external.ForecastResponse, error) {
	params := map[string]string{
		"latitude":      strconv.FormatFloat(coordinates.Latitude, 'f', -1, 64),
		"longitude":     strconv.FormatFloat(coordinates.Longitude, 'f', -1, 64),
		"current":       currentFields,
		"hourly":        hourlyFields,
		"daily":         dailyFields,
		"timezone":      "auto",
		"forecast_days": forecastDays,
	}

	successResp, errResp, _, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(params).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		reason := ""
		if errorResponse, ok := errResp.(*external.APIErrorResponse); ok && errorResponse != nil {
			reason = errorResponse.Reason
		}
		return nil, classifyError(ctx, err, reason)
	}

	return successResp.(*external.ForecastResponse), nil
}

// toForecastDocument validates the parallel arrays and zips them into records
func toForecastDocument(response *external.ForecastResponse) (*entity.ForecastDocument, error) {
	current, err := toCurrentRecord(response.Current)
	if err != nil {
		return nil, err
	}

	hourly, err := toHourlyRecords(response.Hourly)
	if err != nil {
		return nil, err
	}

	daily, err := toDailyRecords(response.Daily)
	if err != nil {
		return nil, err
	}

	return &entity.ForecastDocument{
		Timezone: response.Timezone,
		Location: resolveLocation(response.Timezone, response.UTCOffsetSeconds),
		Current:  current,
		Hourly:   hourly,
		Daily:    daily,
	}, nil
}

func toCurrentRecord(current *external.CurrentWeatherDTO) (entity.CurrentRecord, error) {
	if current == nil {
		return entity.CurrentRecord{}, fmt.Errorf("%w: missing current section", ErrParse)
	}
	if current.Time == nil || current.Temperature == nil || current.WeatherCode == nil {
		return entity.CurrentRecord{}, fmt.Errorf("%w: incomplete current section", ErrParse)
	}

	return entity.CurrentRecord{
		Time:        *current.Time,
		Temperature: *current.Temperature,
		WeatherCode: *current.WeatherCode,
	}, nil
}

func toHourlyRecords(hourly *external.HourlyWeatherDTO) ([]entity.HourlyRecord, error) {
	if hourly == nil {
		return nil, fmt.Errorf("%w: missing hourly section", ErrParse)
	}

	size := len(hourly.Time)
	if len(hourly.Temperature) != size || len(hourly.WeatherCode) != size {
		return nil, fmt.Errorf("%w: hourly arrays differ in length (time=%d, temperature=%d, weathercode=%d)",
			ErrParse, size, len(hourly.Temperature), len(hourly.WeatherCode))
	}

	records := make([]entity.HourlyRecord, 0, size)
	for i := 0; i < size; i++ {
		if hourly.Temperature[i] == nil || hourly.WeatherCode[i] == nil {
			return nil, fmt.Errorf("%w: missing hourly value at index %d", ErrParse, i)
		}
		records = append(records, entity.HourlyRecord{
			Time:        hourly.Time[i],
			Temperature: *hourly.Temperature[i],
			WeatherCode: *hourly.WeatherCode[i],
		})
	}
	return records, nil
}

func toDailyRecords(daily *external.DailyWeatherDTO) ([]entity.DailyRecord, error) {
	if daily == nil {
		return nil, fmt.Errorf("%w: missing daily section", ErrParse)
	}

	size := len(daily.Time)
	for name, length := range map[string]int{
		"weathercode":        len(daily.WeatherCode),
		"temperature_2m_max": len(daily.TemperatureMax),
		"temperature_2m_min": len(daily.TemperatureMin),
		"sunrise":            len(daily.Sunrise),
		"sunset":             len(daily.Sunset),
	} {
		if length != size {
			return nil, fmt.Errorf("%w: daily %s has %d entries, time has %d", ErrParse, name, length, size)
		}
	}

	records := make([]entity.DailyRecord, 0, size)
	for i := 0; i < size; i++ {
		if daily.WeatherCode[i] == nil || daily.TemperatureMax[i] == nil || daily.TemperatureMin[i] == nil {
			return nil, fmt.Errorf("%w: missing daily value at index %d", ErrParse, i)
		}
		records = append(records, entity.DailyRecord{
			Date:           daily.Time[i],
			WeatherCode:    *daily.WeatherCode[i],
			MaxTemperature: *daily.TemperatureMax[i],
			MinTemperature: *daily.TemperatureMin[i],
			Sunrise:        daily.Sunrise[i],
			Sunset:         daily.Sunset[i],
		})
	}
	return records, nil
}

// resolveLocation loads the IANA zone, or pins the reported offset when the zone database lacks it
func resolveLocation(timezone string, utcOffsetSeconds int) *time.Location {
	if timezone != "" {
		if location, err := time.LoadLocation(timezone); err == nil {
			return location
		}
	}

	name := timezone
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, utcOffsetSeconds)
}
