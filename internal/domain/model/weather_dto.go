package model

import "go-weather/internal/domain/entity"

type CreateLocationDTO struct {
	Name              string  `json:"name"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	IsCurrentLocation bool    `json:"isCurrentLocation"`
}

// WeatherReport is the forecast of one location with its clothing advice.
type WeatherReport struct {
	Location     string                    `json:"location"`
	Coordinates  entity.Coordinates        `json:"coordinates"`
	Forecast     entity.Forecast           `json:"forecast"`
	Feeling      entity.TemperatureFeeling `json:"feeling"`
	FeelingColor string                    `json:"feelingColor"`
	Clothing     []entity.ClothingItem     `json:"clothing"`
}
