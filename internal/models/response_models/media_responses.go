package response_models

type ImageResponse struct {
	Image  ImagePayload `json:"image"`
	Cached bool         `json:"cached"`
}

type ImagePayload struct {
	URL          string `json:"url"`
	ThumbURL     string `json:"thumbUrl,omitempty"`
	Description  string `json:"description,omitempty"`
	AuthorName   string `json:"authorName,omitempty"`
	AuthorLink   string `json:"authorLink,omitempty"`
	SourceDomain string `json:"sourceDomain,omitempty"`
}

type StaticMapResponse struct {
	MapURL       string  `json:"mapUrl"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName string  `json:"locationName"`
	Cached       bool    `json:"cached"`
}
