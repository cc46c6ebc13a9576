package entity

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates is a point on Earth. Build it with NewCoordinates to get range checks.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinates validates latitude in [-90, 90] and longitude in [-180, 180].
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return Coordinates{}, fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinates, latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return Coordinates{}, fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinates, longitude)
	}
	return Coordinates{Latitude: latitude, Longitude: longitude}, nil
}
