package location

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/catalog"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
)

type locationUseCase struct {
	dbGateway        db.LocationGateway
	geocodingGateway api.GeocodingGateway
	cityCatalog      catalog.CityCatalog
	clock            func() time.Time
}

func NewLocationUseCase(dbGateway db.LocationGateway, geocodingGateway api.GeocodingGateway, cityCatalog catalog.CityCatalog) UseCase {
	return &locationUseCase{
		dbGateway:        dbGateway,
		geocodingGateway: geocodingGateway,
		cityCatalog:      cityCatalog,
		clock:            time.Now,
	}
}

func (uc *locationUseCase) FindAll(ctx context.Context) ([]entity.SavedLocation, error) {
	locations, err := uc.dbGateway.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []entity.SavedLocation{}
	}
	return locations, nil
}

func (uc *locationUseCase) FindByID(ctx context.Context, id string) (*entity.SavedLocation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, db.ErrLocationNotFound
	}
	return uc.dbGateway.FindByID(ctx, id)
}

func (uc *locationUseCase) Create(ctx context.Context, dto model.CreateLocationDTO) (*entity.SavedLocation, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidLocation)
	}

	coordinates, err := entity.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}

	created, err := uc.dbGateway.Create(ctx, entity.SavedLocation{
		ID:                uuid.NewString(),
		Name:              name,
		Latitude:          coordinates.Latitude,
		Longitude:         coordinates.Longitude,
		IsCurrentLocation: dto.IsCurrentLocation,
		CreatedAt:         uc.clock().UTC(),
	})
	if err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("location.created", created.Name, created.ID))
	return created, nil
}

func (uc *locationUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return db.ErrLocationNotFound
	}

	if err := uc.dbGateway.DeleteByID(ctx, id); err != nil {
		return err
	}

	log.Info(msg.GetMessage("location.deleted", id))
	return nil
}

func (uc *locationUseCase) Search(ctx context.Context, query string) []entity.Place {
	return uc.geocodingGateway.Search(ctx, query)
}

func (uc *locationUseCase) PopularCities(filter string) []entity.PopularCity {
	return uc.cityCatalog.Find(filter)
}
