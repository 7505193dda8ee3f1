package services

import (
	"context"
	"testing"

	dbm "wander/internal/models/db_models"
	"wander/pkg/utils"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func sampleItinerary() *dbm.ItineraryDocument {
	return &dbm.ItineraryDocument{
		Title: "Bali Getaway",
		Days: []dbm.ItineraryDay{
			{
				Day:      1,
				Location: "Ubud",
				Blocks: []dbm.ItineraryBlock{
					{
						ID:   "d1-b1",
						Main: dbm.Activity{Name: "Ubud Monkey Forest"},
						Parallel: &dbm.Activity{
							Name: "Campuhan Ridge Walk",
						},
					},
					{
						ID:   "d1-b2",
						Main: dbm.Activity{Name: "Tegallalang Rice Terraces"},
					},
				},
			},
			{
				Day:      2,
				Location: "Seminyak",
				Blocks: []dbm.ItineraryBlock{
					{
						ID:   "d2-b1",
						Main: dbm.Activity{Name: "Seminyak Beach"},
					},
				},
			},
		},
	}
}

func TestLookupPlaceCachesResults(t *testing.T) {
	cache := newFakeCacheRepo()
	client := &fakePlacesClient{
		results: map[string]*PlaceDetails{
			"Ubud Monkey Forest Bali, Indonesia": {Name: "Sacred Monkey Forest Sanctuary", Rating: floatPtr(4.6)},
		},
	}
	svc := NewEnrichmentService(cache, client)

	details, hit, err := svc.LookupPlace(context.Background(), "Ubud Monkey Forest", "Bali, Indonesia")
	if err != nil {
		t.Fatalf("first lookup returned error: %v", err)
	}
	if hit {
		t.Fatal("first lookup should be a cache miss")
	}
	if details == nil || details.Name != "Sacred Monkey Forest Sanctuary" {
		t.Fatalf("unexpected details: %+v", details)
	}

	details, hit, err = svc.LookupPlace(context.Background(), "Ubud Monkey Forest", "Bali, Indonesia")
	if err != nil {
		t.Fatalf("second lookup returned error: %v", err)
	}
	if !hit {
		t.Fatal("second lookup should be a cache hit")
	}
	if details == nil || details.Rating == nil || *details.Rating != 4.6 {
		t.Fatalf("cached details lost data: %+v", details)
	}
	if client.calls != 1 {
		t.Fatalf("adapter called %d times, want 1", client.calls)
	}
}

func TestLookupPlaceExpiredEntryIsAbsent(t *testing.T) {
	cache := newFakeCacheRepo()
	client := &fakePlacesClient{
		results: map[string]*PlaceDetails{
			"Seminyak Beach Bali": {Name: "Seminyak Beach"},
		},
	}
	svc := NewEnrichmentService(cache, client)

	if _, _, err := svc.LookupPlace(context.Background(), "Seminyak Beach", "Bali"); err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	cache.expirePlace(utils.CacheKeyFrom("Seminyak Beach", "Bali"))

	_, hit, err := svc.LookupPlace(context.Background(), "Seminyak Beach", "Bali")
	if err != nil {
		t.Fatalf("lookup after expiry returned error: %v", err)
	}
	if hit {
		t.Fatal("expired entry must read as a miss")
	}
	if client.calls != 2 {
		t.Fatalf("adapter called %d times, want 2", client.calls)
	}
}

func TestLookupPlaceNoResultDoesNotUpsert(t *testing.T) {
	cache := newFakeCacheRepo()
	client := &fakePlacesClient{results: map[string]*PlaceDetails{}}
	svc := NewEnrichmentService(cache, client)

	details, hit, err := svc.LookupPlace(context.Background(), "Imaginary Cafe", "Nowhere")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if details != nil || hit {
		t.Fatalf("want absent result, got details=%+v hit=%v", details, hit)
	}
	if len(cache.places) != 0 {
		t.Fatalf("absent result must not be cached, found %d entries", len(cache.places))
	}
}

func TestEnrichItineraryMergesAndMarks(t *testing.T) {
	cache := newFakeCacheRepo()
	client := &fakePlacesClient{
		results: map[string]*PlaceDetails{
			"Ubud Monkey Forest Bali, Indonesia": {
				Name:       "Sacred Monkey Forest Sanctuary",
				Rating:     floatPtr(4.6),
				PriceLevel: intPtr(2),
				PhotoURL:   "https://maps.example/photo/abc",
			},
			"Seminyak Beach Bali, Indonesia": {
				Name:   "Seminyak Beach",
				Rating: floatPtr(4.4),
			},
		},
	}
	svc := NewEnrichmentService(cache, client)

	doc := sampleItinerary()
	svc.EnrichItinerary(context.Background(), doc, "Bali, Indonesia")

	matched := doc.Days[0].Blocks[0].Main
	if matched.Rating == nil || *matched.Rating != 4.6 {
		t.Fatalf("matched activity missing rating: %+v", matched)
	}
	if matched.PriceLevel == nil || *matched.PriceLevel != 2 {
		t.Fatalf("matched activity missing price level: %+v", matched)
	}
	if matched.PhotoURL != "https://maps.example/photo/abc" {
		t.Fatalf("matched activity missing photo: %+v", matched)
	}
	if matched.Suggested || matched.Name != "Ubud Monkey Forest" {
		t.Fatalf("matched activity must keep its name unmarked: %+v", matched)
	}

	unmatched := doc.Days[0].Blocks[0].Parallel
	if unmatched.Name != "Campuhan Ridge Walk"+SuggestedMarker {
		t.Fatalf("unmatched parallel activity name = %q", unmatched.Name)
	}
	if !unmatched.Suggested {
		t.Fatal("unmatched activity must carry the suggested flag")
	}
	if unmatched.Rating != nil || unmatched.PriceLevel != nil || unmatched.PhotoURL != "" {
		t.Fatalf("unmatched activity must not gain enrichment fields: %+v", unmatched)
	}
}

func TestEnrichItineraryMarkerIsIdempotent(t *testing.T) {
	cache := newFakeCacheRepo()
	client := &fakePlacesClient{results: map[string]*PlaceDetails{}}
	svc := NewEnrichmentService(cache, client)

	doc := sampleItinerary()
	svc.EnrichItinerary(context.Background(), doc, "Bali, Indonesia")
	svc.EnrichItinerary(context.Background(), doc, "Bali, Indonesia")

	name := doc.Days[1].Blocks[0].Main.Name
	if name != "Seminyak Beach"+SuggestedMarker {
		t.Fatalf("marker appended more than once: %q", name)
	}
}

func TestEnrichItineraryPreservesStructure(t *testing.T) {
	cache := newFakeCacheRepo()
	client := &fakePlacesClient{results: map[string]*PlaceDetails{}}
	svc := NewEnrichmentService(cache, client)

	doc := sampleItinerary()
	svc.EnrichItinerary(context.Background(), doc, "Bali, Indonesia")

	if len(doc.Days) != 2 {
		t.Fatalf("day count changed: %d", len(doc.Days))
	}
	wantBlocks := [][]string{{"d1-b1", "d1-b2"}, {"d2-b1"}}
	for di, day := range doc.Days {
		if day.Day != di+1 {
			t.Fatalf("day number changed at index %d: %d", di, day.Day)
		}
		if len(day.Blocks) != len(wantBlocks[di]) {
			t.Fatalf("block count changed on day %d", day.Day)
		}
		for bi, block := range day.Blocks {
			if block.ID != wantBlocks[di][bi] {
				t.Fatalf("block id changed: got %q want %q", block.ID, wantBlocks[di][bi])
			}
		}
	}
}

func TestEnrichItinerarySwallowsAdapterErrors(t *testing.T) {
	cache := newFakeCacheRepo()
	client := &fakePlacesClient{err: context.DeadlineExceeded}
	svc := NewEnrichmentService(cache, client)

	doc := sampleItinerary()
	svc.EnrichItinerary(context.Background(), doc, "Bali, Indonesia")

	// Every activity was still visited; failures downgrade to suggested.
	for _, day := range doc.Days {
		for _, block := range day.Blocks {
			if !block.Main.Suggested {
				t.Fatalf("activity %q not marked after adapter error", block.Main.Name)
			}
			if block.Parallel != nil && !block.Parallel.Suggested {
				t.Fatalf("parallel activity %q not marked after adapter error", block.Parallel.Name)
			}
		}
	}
	if client.calls != 4 {
		t.Fatalf("adapter called %d times, want 4 (one per activity)", client.calls)
	}
}
