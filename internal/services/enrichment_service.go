package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"wander/internal/models/db_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

const (
	PlaceCacheTTL = 60 * time.Hour

	// SuggestedMarker is appended to activity names that could not be
	// matched against a real place, so rendered itineraries keep the
	// historical look alongside the Suggested flag.
	SuggestedMarker = " (suggested)"
)

type EnrichmentServiceInterface interface {
	// EnrichItinerary walks every day, block, main and parallel activity
	// and attaches rating/price/photo data from the place lookup. It
	// mutates doc in place and never removes or reorders days or blocks.
	// Per-activity failures downgrade that activity to suggested instead
	// of failing the pass.
	EnrichItinerary(ctx context.Context, doc *db_models.ItineraryDocument, destination string)

	// LookupPlace is the cache-backed place lookup. The bool reports a
	// cache hit. A nil result with nil error means no real place matched.
	LookupPlace(ctx context.Context, name string, destination string) (*PlaceDetails, bool, error)
}

type EnrichmentService struct {
	cacheRepo    repositories.CacheRepository
	placesClient PlacesClientInterface
}

func NewEnrichmentService(cacheRepo repositories.CacheRepository, placesClient PlacesClientInterface) EnrichmentServiceInterface {
	return &EnrichmentService{
		cacheRepo:    cacheRepo,
		placesClient: placesClient,
	}
}

func (e *EnrichmentService) EnrichItinerary(ctx context.Context, doc *db_models.ItineraryDocument, destination string) {
	if doc == nil {
		return
	}
	for di := range doc.Days {
		day := &doc.Days[di]
		for bi := range day.Blocks {
			block := &day.Blocks[bi]
			e.enrichActivity(ctx, &block.Main, destination)
			if block.Parallel != nil {
				e.enrichActivity(ctx, block.Parallel, destination)
			}
		}
	}
}

func (e *EnrichmentService) enrichActivity(ctx context.Context, activity *db_models.Activity, destination string) {
	name := strings.TrimSuffix(activity.Name, SuggestedMarker)

	details, _, err := e.LookupPlace(ctx, name, destination)
	if err != nil {
		// A failed lookup and a nonexistent place are indistinguishable
		// to the caller; both leave the activity unverified.
		log.Printf("place lookup failed for %q: %v", name, err)
		details = nil
	}

	if details == nil {
		markSuggested(activity)
		return
	}

	activity.Rating = details.Rating
	activity.PriceLevel = details.PriceLevel
	if details.PhotoURL != "" {
		activity.PhotoURL = details.PhotoURL
	}
}

func markSuggested(activity *db_models.Activity) {
	activity.Suggested = true
	if !strings.HasSuffix(activity.Name, SuggestedMarker) {
		activity.Name += SuggestedMarker
	}
}

func (e *EnrichmentService) LookupPlace(ctx context.Context, name string, destination string) (*PlaceDetails, bool, error) {
	key := utils.CacheKeyFrom(name, destination)

	payload, hit, err := e.cacheRepo.GetPlace(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if hit {
		var details PlaceDetails
		if err := json.Unmarshal(payload, &details); err != nil {
			return nil, false, err
		}
		return &details, true, nil
	}

	details, err := e.placesClient.SearchPlace(ctx, name+" "+destination)
	if err != nil {
		return nil, false, err
	}
	if details == nil {
		// absent: no upsert, callers fall back to suggested labeling
		return nil, false, nil
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return nil, false, err
	}
	if err := e.cacheRepo.PutPlace(ctx, key, raw, PlaceCacheTTL); err != nil {
		// The fresh result is still good; losing the cache write only
		// costs a duplicate lookup later.
		log.Printf("place cache upsert failed for %q: %v", key, err)
	}

	return details, false, nil
}
