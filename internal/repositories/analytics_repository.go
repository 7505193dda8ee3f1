package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "wander/internal/models/db_models"
)

type AnalyticsRepository interface {
	Insert(ctx context.Context, event *dbm.AnalyticsEvent) error
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Insert(ctx context.Context, event *dbm.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
