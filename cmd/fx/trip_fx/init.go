package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/utils"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	planner utils.PlannerClientInterface,
	enrichment services.EnrichmentServiceInterface,
	analytics services.AnalyticsRecorderInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planner, enrichment, analytics)
}
