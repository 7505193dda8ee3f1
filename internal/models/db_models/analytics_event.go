package db_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type AnalyticsEvent struct {
	BaseModel
	EventType string `gorm:"index"`
	TripID    *uuid.UUID
	Payload   json.RawMessage `gorm:"type:jsonb"`
}
