package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "wander/internal/models/db_models"
)

// CacheRepository fronts the three cache tables. Get only returns rows
// whose expiry is still in the future; expired rows count as absent and
// are overwritten in place by the next Put.
type CacheRepository interface {
	GetImage(ctx context.Context, key string) (json.RawMessage, bool, error)
	PutImage(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error

	GetPlace(ctx context.Context, key string) (json.RawMessage, bool, error)
	PutPlace(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error

	GetLocation(ctx context.Context, key string) (json.RawMessage, bool, error)
	PutLocation(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error
}

type cacheRepository struct {
	db *gorm.DB
}

func NewCacheRepository(db *gorm.DB) CacheRepository {
	return &cacheRepository{db: db}
}

var upsertCacheKey = clause.OnConflict{
	Columns:   []clause.Column{{Name: "cache_key"}},
	DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at", "updated_at"}),
}

func (r *cacheRepository) GetImage(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var row dbm.ImageCache
	err := r.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at > ?", key, time.Now()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Payload, true, nil
}

func (r *cacheRepository) PutImage(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	row := dbm.ImageCache{
		CacheKey:  key,
		Payload:   payload,
		ExpiresAt: time.Now().Add(ttl),
	}
	return r.db.WithContext(ctx).Clauses(upsertCacheKey).Create(&row).Error
}

func (r *cacheRepository) GetPlace(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var row dbm.PlaceCache
	err := r.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at > ?", key, time.Now()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Payload, true, nil
}

func (r *cacheRepository) PutPlace(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	row := dbm.PlaceCache{
		CacheKey:  key,
		Payload:   payload,
		ExpiresAt: time.Now().Add(ttl),
	}
	return r.db.WithContext(ctx).Clauses(upsertCacheKey).Create(&row).Error
}

func (r *cacheRepository) GetLocation(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var row dbm.LocationCache
	err := r.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at > ?", key, time.Now()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Payload, true, nil
}

func (r *cacheRepository) PutLocation(ctx context.Context, key string, payload json.RawMessage, ttl time.Duration) error {
	row := dbm.LocationCache{
		CacheKey:  key,
		Payload:   payload,
		ExpiresAt: time.Now().Add(ttl),
	}
	return r.db.WithContext(ctx).Clauses(upsertCacheKey).Create(&row).Error
}
