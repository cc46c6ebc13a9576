package entity

import "time"

type SavedLocation struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name              string    `json:"name" gorm:"not null"`
	Latitude          float64   `json:"latitude" gorm:"not null"`
	Longitude         float64   `json:"longitude" gorm:"not null"`
	IsCurrentLocation bool      `json:"isCurrentLocation" gorm:"not null;default:false"`
	CreatedAt         time.Time `json:"createdDate" gorm:"not null;index"`
}

func (SavedLocation) TableName() string {
	return "saved_locations"
}

// Coordinates returns the stored point.
func (l SavedLocation) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}
