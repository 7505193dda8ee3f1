package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type TripServiceInterface interface {
	GenerateItinerary(ctx context.Context, request request_models.GenerateItineraryRequest, accountId *uuid.UUID) (*response_models.GenerateItineraryResponse, error)
	RefineItinerary(ctx context.Context, tripId string, directionText string) (*response_models.RefineItineraryResponse, error)
	RestoreVersion(ctx context.Context, tripId string, targetVersion int) (*response_models.RestoreVersionResponse, error)
	GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error)
	ListVersions(ctx context.Context, tripId string) ([]response_models.TripVersionSummary, error)
	ListTripsByAccount(ctx context.Context, accountId string, page int, pagesize int) ([]response_models.TripResponse, error)
}

type TripService struct {
	tripRepo   repositories.TripRepository
	planner    utils.PlannerClientInterface
	enrichment EnrichmentServiceInterface
	analytics  AnalyticsRecorderInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	planner utils.PlannerClientInterface,
	enrichment EnrichmentServiceInterface,
	analytics AnalyticsRecorderInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:   tripRepo,
		planner:    planner,
		enrichment: enrichment,
		analytics:  analytics,
	}
}

func (t *TripService) GenerateItinerary(ctx context.Context, request request_models.GenerateItineraryRequest, accountId *uuid.UUID) (*response_models.GenerateItineraryResponse, error) {
	if strings.TrimSpace(request.Destination) == "" {
		return nil, utils.ErrInvalidInput
	}

	durationDays := utils.DurationDays(request.StartDate, request.EndDate)

	raw, err := t.planner.Complete(ctx, buildGenerationPrompt(request, durationDays))
	if err != nil {
		log.Printf("itinerary generation failed: %v", err)
		return nil, utils.ErrPlannerError
	}

	// A parse failure here is fatal: generation makes no repair attempt.
	doc, err := db_models.ParseItineraryDocument(utils.StripCodeFences(raw))
	if err != nil {
		log.Printf("itinerary generation returned unparsable JSON: %v", err)
		return nil, utils.ErrBadPlannerJSON
	}

	t.enrichment.EnrichItinerary(ctx, doc, request.Destination)

	trip := &db_models.Trip{
		AccountID:          accountId,
		Destination:        request.Destination,
		OriginCity:         request.OriginCity,
		GroupSize:          request.GroupSize,
		DurationDays:       durationDays,
		BudgetTier:         request.Budget,
		DecisionMode:       request.DecisionMode,
		GroupPreferences:   request.GroupPreferences,
		SpecialRequests:    request.SpecialRequests,
		AccessibilityNeeds: request.AccessibilityNeeds,
		ItineraryData:      doc,
		Status:             db_models.TripStatusCompleted,
	}
	if start, err := utils.ParseDateOnly(request.StartDate); err == nil {
		trip.TravelMonth = start.Month().String()
		trip.TravelYear = start.Year()
	}

	// The generated itinerary is never returned without being durably
	// stored first.
	if err := t.tripRepo.CreateTripWithFirstVersion(ctx, trip); err != nil {
		log.Printf("persisting generated trip failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	t.analytics.Record(ctx, "itinerary_generated", &trip.ID, map[string]interface{}{
		"destination":   request.Destination,
		"duration_days": durationDays,
		"group_size":    request.GroupSize,
	})

	return &response_models.GenerateItineraryResponse{
		TripID:    trip.ID.String(),
		Itinerary: doc,
	}, nil
}

func (t *TripService) RefineItinerary(ctx context.Context, tripId string, directionText string) (*response_models.RefineItineraryResponse, error) {
	if strings.TrimSpace(directionText) == "" {
		return nil, utils.ErrInvalidInput
	}

	trip, err := t.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.ItineraryData == nil {
		return nil, utils.ErrNoItinerary
	}

	prompt, err := buildRefinementPrompt(trip, directionText)
	if err != nil {
		return nil, err
	}

	raw, err := t.planner.Complete(ctx, prompt)
	if err != nil {
		log.Printf("itinerary refinement failed: %v", err)
		return nil, utils.ErrPlannerError
	}

	doc, err := db_models.ParseItineraryDocument(utils.StripCodeFences(raw))
	if err != nil {
		// One repair attempt, never more.
		doc, err = t.repairItineraryJSON(ctx, raw)
		if err != nil {
			return nil, err
		}
	}

	newVersion, err := t.tripRepo.AppendVersion(ctx, trip.ID, *doc)
	if err != nil {
		log.Printf("appending refined version failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	trip.ItineraryData = doc
	trip.ItineraryVersion = newVersion

	t.analytics.Record(ctx, "itinerary_refined", &trip.ID, map[string]interface{}{
		"version": newVersion,
	})

	return &response_models.RefineItineraryResponse{
		Trip:    response_models.BuildTripResponse(trip),
		Version: newVersion,
	}, nil
}

func (t *TripService) repairItineraryJSON(ctx context.Context, broken string) (*db_models.ItineraryDocument, error) {
	repaired, err := t.planner.Complete(ctx, buildRepairPrompt(broken))
	if err != nil {
		log.Printf("JSON repair attempt failed: %v", err)
		return nil, utils.ErrPlannerError
	}

	doc, err := db_models.ParseItineraryDocument(utils.StripCodeFences(repaired))
	if err != nil {
		log.Printf("JSON still unparsable after repair: %v", err)
		return nil, utils.ErrBadPlannerJSON
	}
	return doc, nil
}

func (t *TripService) RestoreVersion(ctx context.Context, tripId string, targetVersion int) (*response_models.RestoreVersionResponse, error) {
	if targetVersion < 1 {
		return nil, utils.ErrInvalidInput
	}

	trip, err := t.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	target, err := t.tripRepo.GetVersion(ctx, trip.ID, targetVersion)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if target == nil {
		return nil, utils.ErrVersionNotFound
	}

	// The restored content becomes a brand-new version; the target row
	// is never renumbered or rewritten.
	newVersion, err := t.tripRepo.AppendVersion(ctx, trip.ID, target.ItineraryJSON)
	if err != nil {
		log.Printf("appending restored version failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	restored := target.ItineraryJSON
	trip.ItineraryData = &restored
	trip.ItineraryVersion = newVersion

	t.analytics.Record(ctx, "itinerary_restored", &trip.ID, map[string]interface{}{
		"restored_from": targetVersion,
		"version":       newVersion,
	})

	return &response_models.RestoreVersionResponse{
		Trip:    response_models.BuildTripResponse(trip),
		Version: newVersion,
	}, nil
}

func (t *TripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	out := response_models.BuildTripResponse(trip)
	return &out, nil
}

func (t *TripService) ListVersions(ctx context.Context, tripId string) ([]response_models.TripVersionSummary, error) {
	trip, err := t.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	rows, err := t.tripRepo.ListVersions(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripVersionSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.TripVersionSummary{
			Version:   row.Version,
			CreatedAt: row.CreatedAt,
			Title:     row.ItineraryJSON.Title,
		})
	}
	return out, nil
}

func (t *TripService) ListTripsByAccount(ctx context.Context, accountId string, page int, pagesize int) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListTripsByAccountId(ctx, accountId, page, pagesize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, response_models.BuildTripResponse(&trips[i]))
	}
	return out, nil
}

const itinerarySchemaExample = `{
  "title": "string",
  "summary": "string",
  "tags": ["string"],
  "fairness_explainer": "string",
  "days": [
    {
      "day": 1,
      "themes": ["string"],
      "location": "string",
      "blocks": [
        {
          "id": "d1-b1",
          "time_of_day": "morning",
          "main": {"name": "string", "duration_hours": 2, "cost_per_person": 15},
          "parallel": {"name": "string"},
          "rendezvous": {"time": "12:30", "place": "string"}
        }
      ],
      "local_tips": ["string"],
      "pace": "relaxed",
      "budget_band": "moderate"
    }
  ]
}`

func buildGenerationPrompt(request request_models.GenerateItineraryRequest, durationDays int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a %d-day trip to %s for %d people on a %s budget.\n",
		durationDays, request.Destination, request.GroupSize, request.Budget)
	if request.StartDate != "" && request.EndDate != "" {
		fmt.Fprintf(&b, "Travel dates: %s to %s.\n", request.StartDate, request.EndDate)
	}
	if request.OriginCity != "" {
		fmt.Fprintf(&b, "The group travels from %s.\n", request.OriginCity)
	}
	if len(request.Activities) > 0 {
		fmt.Fprintf(&b, "Requested activities: %s.\n", strings.Join(request.Activities, ", "))
	}
	if request.GroupStyle != "" {
		fmt.Fprintf(&b, "Group style: %s.\n", request.GroupStyle)
	}
	if request.SpecialRequests != "" {
		fmt.Fprintf(&b, "Special requests: %s.\n", request.SpecialRequests)
	}
	if request.AccessibilityNeeds != "" {
		fmt.Fprintf(&b, "Accessibility needs: %s.\n", request.AccessibilityNeeds)
	}

	fmt.Fprintf(&b, `
Return JSON only, exactly matching this schema (match keys exactly):
%s

Hard constraints:
- Exactly %d entries in "days", numbered day = 1..%d with no gaps.
- Every block has a unique "id" within its day.
- 2-4 blocks per day with realistic timings.

Return JSON only. No comments, no markdown.`, itinerarySchemaExample, durationDays, durationDays)

	return b.String()
}

func buildRefinementPrompt(trip *db_models.Trip, directionText string) (string, error) {
	current, err := json.Marshal(trip.ItineraryData)
	if err != nil {
		return "", utils.ErrBadPlannerJSON
	}
	preferences, err := json.Marshal(trip.GroupPreferences)
	if err != nil {
		return "", utils.ErrBadPlannerJSON
	}

	return fmt.Sprintf(`Here is a trip itinerary as JSON:
%s

Original form preferences:
%s

Apply this instruction to the itinerary: %q

Hard constraints:
- Preserve every block "id" and every "day" number exactly as they are.
- Keep the same number of days and the same block order.
- Modify only what the instruction requests.

Return the full updated itinerary as JSON only, same schema as the input. No comments, no markdown.`,
		string(current), string(preferences), directionText), nil
}

func buildRepairPrompt(broken string) string {
	return fmt.Sprintf(`Fix this JSON's syntax and return valid JSON only. Do not change any values:
%s`, broken)
}
