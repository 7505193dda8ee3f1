package enrichment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideCacheRepo, providePlacesClient, provideEnrichmentService)

func provideCacheRepo(db *gorm.DB) repositories.CacheRepository {
	return repositories.NewCacheRepository(db)
}

func providePlacesClient() services.PlacesClientInterface {
	return services.NewGooglePlacesClient()
}

func provideEnrichmentService(
	cacheRepo repositories.CacheRepository,
	placesClient services.PlacesClientInterface,
) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(cacheRepo, placesClient)
}
