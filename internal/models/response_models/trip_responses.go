package response_models

import "wander/internal/models/db_models"

type TripResponse struct {
	ID                 string                        `json:"id"`
	Destination        string                        `json:"destination"`
	OriginCity         string                        `json:"originCity,omitempty"`
	GroupSize          int                           `json:"groupSize"`
	DurationDays       int                           `json:"durationDays"`
	BudgetTier         string                        `json:"budgetTier"`
	DecisionMode       string                        `json:"decisionMode,omitempty"`
	SpecialRequests    string                        `json:"specialRequests,omitempty"`
	AccessibilityNeeds string                        `json:"accessibilityNeeds,omitempty"`
	Itinerary          *db_models.ItineraryDocument  `json:"itinerary,omitempty"`
	ItineraryVersion   int                           `json:"itineraryVersion"`
	Status             string                        `json:"status"`
	CreatedAt          int64                         `json:"createdAt"`
}

type GenerateItineraryResponse struct {
	TripID    string                       `json:"tripId"`
	Itinerary *db_models.ItineraryDocument `json:"itinerary"`
}

type RefineItineraryResponse struct {
	Trip    TripResponse `json:"trip"`
	Version int          `json:"version"`
}

type RestoreVersionResponse struct {
	Trip    TripResponse `json:"trip"`
	Version int          `json:"version"`
}

type TripVersionSummary struct {
	Version   int    `json:"version"`
	CreatedAt int64  `json:"createdAt"`
	Title     string `json:"title,omitempty"`
}

func BuildTripResponse(trip *db_models.Trip) TripResponse {
	return TripResponse{
		ID:                 trip.ID.String(),
		Destination:        trip.Destination,
		OriginCity:         trip.OriginCity,
		GroupSize:          trip.GroupSize,
		DurationDays:       trip.DurationDays,
		BudgetTier:         trip.BudgetTier,
		DecisionMode:       trip.DecisionMode,
		SpecialRequests:    trip.SpecialRequests,
		AccessibilityNeeds: trip.AccessibilityNeeds,
		Itinerary:          trip.ItineraryData,
		ItineraryVersion:   trip.ItineraryVersion,
		Status:             trip.Status,
		CreatedAt:          trip.CreatedAt,
	}
}
