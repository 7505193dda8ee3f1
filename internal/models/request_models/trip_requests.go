package request_models

type GenerateItineraryRequest struct {
	Destination        string            `json:"destination"`
	StartDate          string            `json:"startDate,omitempty"`
	EndDate            string            `json:"endDate,omitempty"`
	GroupSize          int               `json:"groupSize"`
	Budget             string            `json:"budget"`
	Activities         []string          `json:"activities"`
	GroupStyle         string            `json:"groupStyle"`
	DecisionMode       string            `json:"decisionMode,omitempty"`
	GroupPreferences   map[string]string `json:"groupPreferences,omitempty"`
	SpecialRequests    string            `json:"specialRequests,omitempty"`
	AccessibilityNeeds string            `json:"accessibilityNeeds,omitempty"`
	OriginCity         string            `json:"originCity,omitempty"`
}

type RefineItineraryRequest struct {
	TripID        string `json:"tripId"`
	DirectionText string `json:"directionText"`
}

type RestoreVersionRequest struct {
	TripID        string `json:"tripId"`
	TargetVersion int    `json:"targetVersion"`
}
