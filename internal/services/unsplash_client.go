package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"wander/internal/models/response_models"
)

type UnsplashClientInterface interface {
	// SearchImage returns the best photo match for a query, or (nil, nil)
	// when the search yields nothing.
	SearchImage(ctx context.Context, query string) (*response_models.ImagePayload, error)
}

type UnsplashClient struct {
	HTTP      *http.Client
	AccessKey string
	Base      string
}

func NewUnsplashClient() *UnsplashClient {
	return &UnsplashClient{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		AccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		Base:      "https://api.unsplash.com",
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

func (c *UnsplashClient) SearchImage(ctx context.Context, query string) (*response_models.ImagePayload, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")

	endpoint := c.Base + "/search/photos?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash search: status %d", resp.StatusCode)
	}

	var body unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("unsplash search: %w", err)
	}

	if len(body.Results) == 0 {
		return nil, nil
	}

	top := body.Results[0]
	description := top.Description
	if description == "" {
		description = top.AltDescription
	}

	return &response_models.ImagePayload{
		URL:          top.URLs.Regular,
		ThumbURL:     top.URLs.Thumb,
		Description:  description,
		AuthorName:   top.User.Name,
		AuthorLink:   top.User.Links.HTML,
		SourceDomain: "unsplash.com",
	}, nil
}
