package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// PlaceDetails is what a successful place lookup yields and what the
// place cache stores.
type PlaceDetails struct {
	Name       string   `json:"name"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
	PhotoURL   string   `json:"photo_url,omitempty"`
}

type PlacesClientInterface interface {
	// SearchPlace resolves a free-text query against Google Places text
	// search. Returns (nil, nil) when the query matches nothing.
	SearchPlace(ctx context.Context, query string) (*PlaceDetails, error)
}

type GooglePlacesClient struct {
	HTTP   *http.Client
	APIKey string
	Base   string
}

func NewGooglePlacesClient() *GooglePlacesClient {
	return &GooglePlacesClient{
		HTTP:   &http.Client{Timeout: 15 * time.Second},
		APIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		Base:   "https://maps.googleapis.com/maps/api",
	}
}

type placesTextSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name       string   `json:"name"`
		Rating     *float64 `json:"rating"`
		PriceLevel *int     `json:"price_level"`
		Photos     []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

func (c *GooglePlacesClient) SearchPlace(ctx context.Context, query string) (*PlaceDetails, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("key", c.APIKey)

	endpoint := c.Base + "/place/textsearch/json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places text search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places text search: status %d", resp.StatusCode)
	}

	var body placesTextSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("places text search: %w", err)
	}

	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		return nil, nil
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("places text search: status %s", body.Status)
	}

	top := body.Results[0]
	details := &PlaceDetails{
		Name:       top.Name,
		Rating:     top.Rating,
		PriceLevel: top.PriceLevel,
	}
	if len(top.Photos) > 0 && top.Photos[0].PhotoReference != "" {
		details.PhotoURL = c.photoURL(top.Photos[0].PhotoReference)
	}
	return details, nil
}

func (c *GooglePlacesClient) photoURL(photoReference string) string {
	q := url.Values{}
	q.Set("maxwidth", "800")
	q.Set("photo_reference", photoReference)
	q.Set("key", c.APIKey)
	return c.Base + "/place/photo?" + q.Encode()
}
