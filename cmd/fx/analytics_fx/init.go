package analytics_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideAnalyticsRepo, provideAnalyticsRecorder)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepository {
	return repositories.NewAnalyticsRepository(db)
}

func provideAnalyticsRecorder(analyticsRepo repositories.AnalyticsRepository) services.AnalyticsRecorderInterface {
	return services.NewAnalyticsRecorder(analyticsRepo)
}
