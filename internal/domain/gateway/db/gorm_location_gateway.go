package db

import (
	"context"
	"errors"
	"fmt"

	"go-weather/internal/domain/entity"

	"gorm.io/gorm"
)

type GormLocationGateway struct {
	DB *gorm.DB
}

var _ LocationGateway = (*GormLocationGateway)(nil)

func NewGormLocationGateway(db *gorm.DB) *GormLocationGateway {
	return &GormLocationGateway{DB: db}
}

// Migrate creates or updates the saved_locations table
func (gateway *GormLocationGateway) Migrate() error {
	return gateway.DB.AutoMigrate(&entity.SavedLocation{})
}

func (gateway *GormLocationGateway) FindAll(ctx context.Context) ([]entity.SavedLocation, error) {
	var locations []entity.SavedLocation

	err := gateway.DB.WithContext(ctx).
		Order("created_at ASC").
		Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved locations: %w", err)
	}

	return locations, nil
}

func (gateway *GormLocationGateway) FindByID(ctx context.Context, id string) (*entity.SavedLocation, error) {
	var location entity.SavedLocation

	err := gateway.DB.WithContext(ctx).First(&location, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find saved location %s: %w", id, err)
	}

	return &location, nil
}

func (gateway *GormLocationGateway) Create(ctx context.Context, location entity.SavedLocation) (*entity.SavedLocation, error) {
	if err := gateway.DB.WithContext(ctx).Create(&location).Error; err != nil {
		return nil, fmt.Errorf("failed to save location %s: %w", location.Name, err)
	}

	return &location, nil
}

func (gateway *GormLocationGateway) DeleteByID(ctx context.Context, id string) error {
	result := gateway.DB.WithContext(ctx).Delete(&entity.SavedLocation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved location %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}

	return nil
}
