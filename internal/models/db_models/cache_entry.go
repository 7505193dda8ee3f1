package db_models

import (
	"encoding/json"
	"time"
)

// The three cache tables share one row shape. An entry is usable only
// while the current time is before ExpiresAt; expired rows are treated
// as absent and overwritten in place on the next successful lookup.

type ImageCache struct {
	BaseModel
	CacheKey  string          `gorm:"uniqueIndex"`
	Payload   json.RawMessage `gorm:"type:jsonb"`
	ExpiresAt time.Time
}

func (ImageCache) TableName() string { return "image_cache" }

type PlaceCache struct {
	BaseModel
	CacheKey  string          `gorm:"uniqueIndex"`
	Payload   json.RawMessage `gorm:"type:jsonb"`
	ExpiresAt time.Time
}

func (PlaceCache) TableName() string { return "place_cache" }

type LocationCache struct {
	BaseModel
	CacheKey  string          `gorm:"uniqueIndex"`
	Payload   json.RawMessage `gorm:"type:jsonb"`
	ExpiresAt time.Time
}

func (LocationCache) TableName() string { return "location_cache" }
