package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

const (
	ImageCacheTTL    = 7 * 24 * time.Hour
	LocationCacheTTL = 30 * 24 * time.Hour
)

type MediaServiceInterface interface {
	FetchImage(ctx context.Context, request request_models.FetchImageRequest) (*response_models.ImageResponse, error)
	GenerateStaticMap(ctx context.Context, request request_models.StaticMapRequest) (*response_models.StaticMapResponse, error)
}

type MediaService struct {
	cacheRepo      repositories.CacheRepository
	tripRepo       repositories.TripRepository
	unsplashClient UnsplashClientInterface
	mapsClient     MapsClientInterface
}

func NewMediaService(
	cacheRepo repositories.CacheRepository,
	tripRepo repositories.TripRepository,
	unsplashClient UnsplashClientInterface,
	mapsClient MapsClientInterface,
) MediaServiceInterface {
	return &MediaService{
		cacheRepo:      cacheRepo,
		tripRepo:       tripRepo,
		unsplashClient: unsplashClient,
		mapsClient:     mapsClient,
	}
}

func (m *MediaService) FetchImage(ctx context.Context, request request_models.FetchImageRequest) (*response_models.ImageResponse, error) {
	if request.Query == "" {
		return nil, utils.ErrInvalidInput
	}

	parts := []string{"unsplash"}
	if request.ItineraryID != "" {
		parts = append(parts, request.ItineraryID)
	}
	parts = append(parts, request.Query)
	key := utils.CacheKeyFrom(parts...)

	payload, hit, err := m.cacheRepo.GetImage(ctx, key)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hit {
		var image response_models.ImagePayload
		if err := json.Unmarshal(payload, &image); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return &response_models.ImageResponse{Image: image, Cached: true}, nil
	}

	image, err := m.unsplashClient.SearchImage(ctx, request.Query)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, utils.ErrImageNotFound
	}

	raw, err := json.Marshal(image)
	if err != nil {
		return nil, err
	}
	if err := m.cacheRepo.PutImage(ctx, key, raw, ImageCacheTTL); err != nil {
		log.Printf("image cache upsert failed for %q: %v", key, err)
	}

	return &response_models.ImageResponse{Image: *image, Cached: false}, nil
}

// mapPayload is the location cache's stored shape.
type mapPayload struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	MapURL    string  `json:"map_url"`
}

func (m *MediaService) GenerateStaticMap(ctx context.Context, request request_models.StaticMapRequest) (*response_models.StaticMapResponse, error) {
	if request.TripID == "" || request.LocationName == "" || request.DayNumber < 1 {
		return nil, utils.ErrInvalidInput
	}

	trip, err := m.tripRepo.GetTripById(ctx, request.TripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	key := utils.CacheKeyFrom("map", request.TripID, strconv.Itoa(request.DayNumber), request.LocationName)

	payload, hit, err := m.cacheRepo.GetLocation(ctx, key)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hit {
		var cached mapPayload
		if err := json.Unmarshal(payload, &cached); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return &response_models.StaticMapResponse{
			MapURL:       cached.MapURL,
			Latitude:     cached.Latitude,
			Longitude:    cached.Longitude,
			LocationName: request.LocationName,
			Cached:       true,
		}, nil
	}

	point, err := m.mapsClient.Geocode(ctx, request.LocationName)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, utils.ErrLocationNotFound
	}

	mapURL := m.mapsClient.StaticMapURL(*point, request.Size)

	raw, err := json.Marshal(mapPayload{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		MapURL:    mapURL,
	})
	if err != nil {
		return nil, err
	}
	if err := m.cacheRepo.PutLocation(ctx, key, raw, LocationCacheTTL); err != nil {
		log.Printf("location cache upsert failed for %q: %v", key, err)
	}

	return &response_models.StaticMapResponse{
		MapURL:       mapURL,
		Latitude:     point.Latitude,
		Longitude:    point.Longitude,
		LocationName: request.LocationName,
		Cached:       false,
	}, nil
}
