package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "wander/internal/models/db_models"
)

type TripRepository interface {
	// CreateTripWithFirstVersion stores the trip row and version 1 of its
	// itinerary in one transaction. The trip is only considered generated
	// once both rows exist.
	CreateTripWithFirstVersion(ctx context.Context, trip *dbm.Trip) error

	GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error)

	// AppendVersion inserts a version row at current_version+1 and moves
	// the trip's live itinerary to it, atomically. The version table
	// stays the append-only source of truth for what versions exist.
	AppendVersion(ctx context.Context, tripId uuid.UUID, doc dbm.ItineraryDocument) (int, error)

	GetVersion(ctx context.Context, tripId uuid.UUID, version int) (*dbm.TripVersion, error)
	ListVersions(ctx context.Context, tripId uuid.UUID) ([]dbm.TripVersion, error)
	ListTripsByAccountId(ctx context.Context, accountId string, page int, pagesize int) ([]dbm.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTripWithFirstVersion(ctx context.Context, trip *dbm.Trip) error {
	if trip.ItineraryData == nil {
		return errors.New("trip has no itinerary to version")
	}
	trip.ItineraryVersion = 1

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		first := dbm.TripVersion{
			TripID:        trip.ID,
			Version:       1,
			ItineraryJSON: *trip.ItineraryData,
		}
		return tx.Create(&first).Error
	})
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", tripId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) AppendVersion(ctx context.Context, tripId uuid.UUID, doc dbm.ItineraryDocument) (int, error) {
	var newVersion int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip dbm.Trip
		if err := tx.First(&trip, "id = ?", tripId).Error; err != nil {
			return err
		}

		newVersion = trip.ItineraryVersion + 1
		row := dbm.TripVersion{
			TripID:        tripId,
			Version:       newVersion,
			ItineraryJSON: doc,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		return tx.Model(&trip).Updates(map[string]interface{}{
			"itinerary_data":    &doc,
			"itinerary_version": newVersion,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

func (r *tripRepository) GetVersion(ctx context.Context, tripId uuid.UUID, version int) (*dbm.TripVersion, error) {
	var row dbm.TripVersion
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND version = ?", tripId, version).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *tripRepository) ListVersions(ctx context.Context, tripId uuid.UUID) ([]dbm.TripVersion, error) {
	var rows []dbm.TripVersion
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("version ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tripRepository) ListTripsByAccountId(ctx context.Context, accountId string, page int, pagesize int) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountId).
		Order("created_at DESC").
		Offset((page - 1) * pagesize).
		Limit(pagesize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
