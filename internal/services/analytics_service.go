package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"wander/internal/models/db_models"
	"wander/internal/repositories"
)

// AnalyticsRecorderInterface records product events. Recording is
// always best-effort: a failed write is logged and never surfaced.
type AnalyticsRecorderInterface interface {
	Record(ctx context.Context, eventType string, tripId *uuid.UUID, payload interface{})
}

type AnalyticsRecorder struct {
	analyticsRepo repositories.AnalyticsRepository
}

func NewAnalyticsRecorder(analyticsRepo repositories.AnalyticsRepository) AnalyticsRecorderInterface {
	return &AnalyticsRecorder{
		analyticsRepo: analyticsRepo,
	}
}

func (a *AnalyticsRecorder) Record(ctx context.Context, eventType string, tripId *uuid.UUID, payload interface{}) {
	var raw json.RawMessage
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			log.Printf("analytics payload for %q not serializable: %v", eventType, err)
		} else {
			raw = encoded
		}
	}

	event := &db_models.AnalyticsEvent{
		EventType: eventType,
		TripID:    tripId,
		Payload:   raw,
	}
	if err := a.analyticsRepo.Insert(ctx, event); err != nil {
		log.Printf("analytics event %q not recorded: %v", eventType, err)
	}
}
