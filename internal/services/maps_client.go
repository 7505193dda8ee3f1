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

type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type MapsClientInterface interface {
	// Geocode resolves a location name to coordinates. Returns (nil, nil)
	// when geocoding finds nothing.
	Geocode(ctx context.Context, locationName string) (*GeoPoint, error)

	// StaticMapURL builds the Static Maps image URL for a point. Pure URL
	// construction, no network call.
	StaticMapURL(point GeoPoint, size string) string
}

type GoogleMapsClient struct {
	HTTP   *http.Client
	APIKey string
	Base   string
}

func NewGoogleMapsClient() *GoogleMapsClient {
	return &GoogleMapsClient{
		HTTP:   &http.Client{Timeout: 15 * time.Second},
		APIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		Base:   "https://maps.googleapis.com/maps/api",
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GoogleMapsClient) Geocode(ctx context.Context, locationName string) (*GeoPoint, error) {
	q := url.Values{}
	q.Set("address", locationName)
	q.Set("key", c.APIKey)

	endpoint := c.Base + "/geocode/json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}

	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		return nil, nil
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("geocode: status %s", body.Status)
	}

	loc := body.Results[0].Geometry.Location
	return &GeoPoint{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

func (c *GoogleMapsClient) StaticMapURL(point GeoPoint, size string) string {
	if size == "" {
		size = "600x400"
	}
	center := fmt.Sprintf("%f,%f", point.Latitude, point.Longitude)

	q := url.Values{}
	q.Set("center", center)
	q.Set("zoom", "14")
	q.Set("size", size)
	q.Set("markers", "color:red|"+center)
	q.Set("key", c.APIKey)
	return c.Base + "/staticmap?" + q.Encode()
}
