package media_fx

import (
	"go.uber.org/fx"

	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideUnsplashClient, provideMapsClient, provideMediaService)

func provideUnsplashClient() services.UnsplashClientInterface {
	return services.NewUnsplashClient()
}

func provideMapsClient() services.MapsClientInterface {
	return services.NewGoogleMapsClient()
}

func provideMediaService(
	cacheRepo repositories.CacheRepository,
	tripRepo repositories.TripRepository,
	unsplashClient services.UnsplashClientInterface,
	mapsClient services.MapsClientInterface,
) services.MediaServiceInterface {
	return services.NewMediaService(cacheRepo, tripRepo, unsplashClient, mapsClient)
}
