package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	TripStatusDraft     = "draft"
	TripStatusCompleted = "completed"
)

// JSONMap stores free-form key/value preferences as jsonb.
type JSONMap map[string]string

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported jsonb column type %T", value)
	}
}

type Trip struct {
	BaseModel
	AccountID *uuid.UUID `gorm:"type:uuid;index"`

	Destination        string
	OriginCity         string
	TravelMonth        string
	TravelYear         int
	GroupSize          int
	DurationDays       int
	BudgetTier         string
	DecisionMode       string
	GroupPreferences   JSONMap `gorm:"type:jsonb"`
	SpecialRequests    string
	AccessibilityNeeds string

	ItineraryData    *ItineraryDocument `gorm:"type:jsonb"`
	ItineraryVersion int
	Status           string

	Versions []TripVersion
}
