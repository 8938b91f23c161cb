package repositories

import (
	"context"

	"gorm.io/gorm"
	"tourcms/internal/models/db_models"
	"tourcms/internal/query"
)

type MultiDayTourRepository interface {
	List(ctx context.Context, params query.Params) ([]db_models.MultiDayTour, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.MultiDayTour, error)
	Create(ctx context.Context, tour *db_models.MultiDayTour) error
	// CreateAtEnd assigns Order = max(order)+1 (1 on an empty table) and
	// inserts the tour in the same transaction.
	CreateAtEnd(ctx context.Context, tour *db_models.MultiDayTour) error
	Update(ctx context.Context, tour *db_models.MultiDayTour) error
	Delete(ctx context.Context, id uint) error
	// Reorder sets each tour's order to its index in ids. Either every
	// tour is updated or none is.
	Reorder(ctx context.Context, ids []uint) error
}

type multiDayTourRepository struct {
	db *gorm.DB
}

func NewMultiDayTourRepository(db *gorm.DB) MultiDayTourRepository {
	return &multiDayTourRepository{db: db}
}

var multiDayPreloads = []string{"Region", "InfoByDays"}

func (r *multiDayTourRepository) List(ctx context.Context, params query.Params) ([]db_models.MultiDayTour, int64, error) {
	return listPage[db_models.MultiDayTour](ctx, r.db, params, multiDayPreloads...)
}

func (r *multiDayTourRepository) GetByID(ctx context.Context, id uint) (*db_models.MultiDayTour, error) {
	return findByID[db_models.MultiDayTour](ctx, r.db, id, multiDayPreloads...)
}

func (r *multiDayTourRepository) Create(ctx context.Context, tour *db_models.MultiDayTour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *multiDayTourRepository) CreateAtEnd(ctx context.Context, tour *db_models.MultiDayTour) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&db_models.MultiDayTour{}).
			Select("COALESCE(MAX(sort_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		tour.Order = maxOrder + 1
		return tx.Create(tour).Error
	})
}

func (r *multiDayTourRepository) Update(ctx context.Context, tour *db_models.MultiDayTour) error {
	return updateColumns(ctx, r.db, tour)
}

func (r *multiDayTourRepository) Delete(ctx context.Context, id uint) error {
	return deleteWithChildren[db_models.MultiDayTour, db_models.MultiDayInfo](ctx, r.db, id, "multi_day_tour_id")
}

func (r *multiDayTourRepository) Reorder(ctx context.Context, ids []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			result := tx.Model(&db_models.MultiDayTour{}).
				Where("id = ?", id).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
