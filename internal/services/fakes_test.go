package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	dbm "wander/internal/models/db_models"
	"wander/internal/models/response_models"
)

// fakeCacheRepo keeps cache rows in maps and honors expiry the same way
// the real repository does.
type fakeCacheRepo struct {
	images    map[string]fakeCacheRow
	places    map[string]fakeCacheRow
	locations map[string]fakeCacheRow

	putPlaceTTL    time.Duration
	putImageTTL    time.Duration
	putLocationTTL time.Duration
}

type fakeCacheRow struct {
	payload   json.RawMessage
	expiresAt time.Time
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{
		images:    make(map[string]fakeCacheRow),
		places:    make(map[string]fakeCacheRow),
		locations: make(map[string]fakeCacheRow),
	}
}

func (f *fakeCacheRepo) get(store map[string]fakeCacheRow, key string) (json.RawMessage, bool, error) {
	row, ok := store[key]
	if !ok || time.Now().After(row.expiresAt) {
		return nil, false, nil
	}
	return row.payload, true, nil
}

func (f *fakeCacheRepo) GetImage(_ context.Context, key string) (json.RawMessage, bool, error) {
	return f.get(f.images, key)
}

func (f *fakeCacheRepo) PutImage(_ context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	f.putImageTTL = ttl
	f.images[key] = fakeCacheRow{payload: payload, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (f *fakeCacheRepo) GetPlace(_ context.Context, key string) (json.RawMessage, bool, error) {
	return f.get(f.places, key)
}

func (f *fakeCacheRepo) PutPlace(_ context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	f.putPlaceTTL = ttl
	f.places[key] = fakeCacheRow{payload: payload, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (f *fakeCacheRepo) GetLocation(_ context.Context, key string) (json.RawMessage, bool, error) {
	return f.get(f.locations, key)
}

func (f *fakeCacheRepo) PutLocation(_ context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	f.putLocationTTL = ttl
	f.locations[key] = fakeCacheRow{payload: payload, expiresAt: time.Now().Add(ttl)}
	return nil
}

// expirePlace rewrites an entry's expiry into the past so it reads as
// absent on the next lookup.
func (f *fakeCacheRepo) expirePlace(key string) {
	row := f.places[key]
	row.expiresAt = time.Now().Add(-time.Minute)
	f.places[key] = row
}

type fakePlacesClient struct {
	calls   int
	results map[string]*PlaceDetails
	err     error
}

func (f *fakePlacesClient) SearchPlace(_ context.Context, query string) (*PlaceDetails, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

// fakeTripRepo keeps trips and version rows in memory and mirrors the
// real repository's transactional semantics: a failed append leaves the
// trip row untouched.
type fakeTripRepo struct {
	trips    map[uuid.UUID]*dbm.Trip
	versions []dbm.TripVersion

	failCreate bool
	failAppend bool
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[uuid.UUID]*dbm.Trip)}
}

func (f *fakeTripRepo) CreateTripWithFirstVersion(_ context.Context, trip *dbm.Trip) error {
	if f.failCreate {
		return errors.New("insert failed")
	}
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	trip.ItineraryVersion = 1
	stored := *trip
	f.trips[trip.ID] = &stored
	f.versions = append(f.versions, dbm.TripVersion{
		TripID:        trip.ID,
		Version:       1,
		ItineraryJSON: *trip.ItineraryData,
	})
	return nil
}

func (f *fakeTripRepo) GetTripById(_ context.Context, tripId string) (*dbm.Trip, error) {
	id, err := uuid.Parse(tripId)
	if err != nil {
		return nil, nil
	}
	trip, ok := f.trips[id]
	if !ok {
		return nil, nil
	}
	out := *trip
	return &out, nil
}

func (f *fakeTripRepo) AppendVersion(_ context.Context, tripId uuid.UUID, doc dbm.ItineraryDocument) (int, error) {
	if f.failAppend {
		return 0, errors.New("version insert failed")
	}
	trip, ok := f.trips[tripId]
	if !ok {
		return 0, errors.New("trip not found")
	}
	newVersion := trip.ItineraryVersion + 1
	f.versions = append(f.versions, dbm.TripVersion{
		TripID:        tripId,
		Version:       newVersion,
		ItineraryJSON: doc,
	})
	stored := doc
	trip.ItineraryData = &stored
	trip.ItineraryVersion = newVersion
	return newVersion, nil
}

func (f *fakeTripRepo) GetVersion(_ context.Context, tripId uuid.UUID, version int) (*dbm.TripVersion, error) {
	for i := range f.versions {
		if f.versions[i].TripID == tripId && f.versions[i].Version == version {
			out := f.versions[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeTripRepo) ListVersions(_ context.Context, tripId uuid.UUID) ([]dbm.TripVersion, error) {
	var out []dbm.TripVersion
	for _, row := range f.versions {
		if row.TripID == tripId {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) ListTripsByAccountId(_ context.Context, accountId string, _ int, _ int) ([]dbm.Trip, error) {
	var out []dbm.Trip
	for _, trip := range f.trips {
		if trip.AccountID != nil && trip.AccountID.String() == accountId {
			out = append(out, *trip)
		}
	}
	return out, nil
}

// fakePlanner replays scripted completions in order.
type fakePlanner struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakePlanner) Complete(_ context.Context, prompt string) (string, error) {
	idx := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	if idx >= len(f.responses) {
		return "", fmt.Errorf("unexpected planner call %d", idx)
	}
	return f.responses[idx], nil
}

type noopEnrichment struct{}

func (noopEnrichment) EnrichItinerary(context.Context, *dbm.ItineraryDocument, string) {}

func (noopEnrichment) LookupPlace(context.Context, string, string) (*PlaceDetails, bool, error) {
	return nil, false, nil
}

type recordingAnalytics struct {
	events []string
}

func (r *recordingAnalytics) Record(_ context.Context, eventType string, _ *uuid.UUID, _ interface{}) {
	r.events = append(r.events, eventType)
}

type fakeUnsplashClient struct {
	calls  int
	result *response_models.ImagePayload
	err    error
}

func (f *fakeUnsplashClient) SearchImage(context.Context, string) (*response_models.ImagePayload, error) {
	f.calls++
	return f.result, f.err
}

type fakeMapsClient struct {
	calls int
	point *GeoPoint
	err   error
}

func (f *fakeMapsClient) Geocode(context.Context, string) (*GeoPoint, error) {
	f.calls++
	return f.point, f.err
}

func (f *fakeMapsClient) StaticMapURL(point GeoPoint, size string) string {
	if size == "" {
		size = "600x400"
	}
	return fmt.Sprintf("https://maps.test/static?center=%f,%f&size=%s", point.Latitude, point.Longitude, size)
}
