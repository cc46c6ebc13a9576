package db

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"
)

var ErrLocationNotFound = errors.New("saved location not found")

type LocationGateway interface {
	// FindAll returns every saved location, oldest first
	FindAll(ctx context.Context) ([]entity.SavedLocation, error)
	// FindByID returns ErrLocationNotFound when no row matches
	FindByID(ctx context.Context, id string) (*entity.SavedLocation, error)

	Create(ctx context.Context, location entity.SavedLocation) (*entity.SavedLocation, error)
	// DeleteByID returns ErrLocationNotFound when no row matches
	DeleteByID(ctx context.Context, id string) error
}
