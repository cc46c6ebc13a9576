package entity

import "time"

// ForecastDocument is the parsed forecast response with one record per hour and per day.
// Time strings are kept as sent by the API, in the Location's wall clock.
type ForecastDocument struct {
	Timezone string
	Location *time.Location
	Current  CurrentRecord
	Hourly   []HourlyRecord
	Daily    []DailyRecord
}

type CurrentRecord struct {
	Time        string
	Temperature float64
	WeatherCode int
}

type HourlyRecord struct {
	Time        string
	Temperature float64
	WeatherCode int
}

type DailyRecord struct {
	Date           string
	WeatherCode    int
	MaxTemperature float64
	MinTemperature float64
	Sunrise        string
	Sunset         string
}
