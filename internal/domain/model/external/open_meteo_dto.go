package external

// ForecastResponse represents the response from the Open-Meteo forecast API
type ForecastResponse struct {
	Latitude         float64            `json:"latitude"`
	Longitude        float64            `json:"longitude"`
	Timezone         string             `json:"timezone"`
	UTCOffsetSeconds int                `json:"utc_offset_seconds"`
	Current          *CurrentWeatherDTO `json:"current"`
	Hourly           *HourlyWeatherDTO  `json:"hourly"`
	Daily            *DailyWeatherDTO   `json:"daily"`
}

// CurrentWeatherDTO represents the current block
type CurrentWeatherDTO struct {
	Time        *string  `json:"time"`
	Temperature *float64 `json:"temperature_2m"`
	WeatherCode *int     `json:"weathercode"`
}

// HourlyWeatherDTO holds parallel arrays indexed by hour. Nulls decode to nil entries.
type HourlyWeatherDTO struct {
	Time        []string   `json:"time"`
	Temperature []*float64 `json:"temperature_2m"`
	WeatherCode []*int     `json:"weathercode"`
}

// DailyWeatherDTO holds parallel arrays indexed by day
type DailyWeatherDTO struct {
	Time           []string   `json:"time"`
	WeatherCode    []*int     `json:"weathercode"`
	TemperatureMax []*float64 `json:"temperature_2m_max"`
	TemperatureMin []*float64 `json:"temperature_2m_min"`
	Sunrise        []string   `json:"sunrise"`
	Sunset         []string   `json:"sunset"`
}

// APIErrorResponse represents error responses from Open-Meteo
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
