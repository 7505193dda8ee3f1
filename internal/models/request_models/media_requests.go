package request_models

type FetchImageRequest struct {
	Query       string `json:"query"`
	ItineraryID string `json:"itineraryId,omitempty"`
}

type StaticMapRequest struct {
	TripID       string `json:"tripId"`
	DayNumber    int    `json:"dayNumber"`
	LocationName string `json:"locationName"`
	Size         string `json:"size,omitempty"`
}
