package db_models

import "github.com/google/uuid"

// TripVersion rows are append-only: version numbers are strictly
// increasing per trip, never reused, never deleted. The row at the
// trip's current ItineraryVersion always equals its live ItineraryData.
type TripVersion struct {
	BaseModel
	TripID        uuid.UUID         `gorm:"type:uuid;index:idx_trip_version,unique"`
	Version       int               `gorm:"index:idx_trip_version,unique"`
	ItineraryJSON ItineraryDocument `gorm:"type:jsonb"`
}

func (TripVersion) TableName() string { return "trips_versions" }
