package location

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

var ErrInvalidLocation = errors.New("invalid location")

type UseCase interface {
	// FindAll returns the saved locations, oldest first
	FindAll(ctx context.Context) ([]entity.SavedLocation, error)

	// FindByID returns db.ErrLocationNotFound when the id is unknown
	FindByID(ctx context.Context, id string) (*entity.SavedLocation, error)

	// Create validates and saves a location under a new id
	Create(ctx context.Context, dto model.CreateLocationDTO) (*entity.SavedLocation, error)

	// Delete removes a saved location, db.ErrLocationNotFound when the id is unknown
	Delete(ctx context.Context, id string) error

	// Search resolves a place name through the geocoding API. Failures yield no places.
	Search(ctx context.Context, query string) []entity.Place

	// PopularCities filters the built-in city catalog by city or country name
	PopularCities(filter string) []entity.PopularCity
}
