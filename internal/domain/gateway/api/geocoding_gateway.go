package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// GeocodingGateway resolves free-text place names
type GeocodingGateway interface {
	// Search returns the matching places. API failures, rate limiting and cancellation
	// all degrade to an empty slice.
	Search(ctx context.Context, query string) []entity.Place
}
