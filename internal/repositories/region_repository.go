package repositories

import (
	"context"

	"gorm.io/gorm"
	"tourcms/internal/models/db_models"
	"tourcms/internal/query"
)

type RegionRepository interface {
	List(ctx context.Context, params query.Params) ([]db_models.Region, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.Region, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, region *db_models.Region) error
	Update(ctx context.Context, region *db_models.Region) error
	Delete(ctx context.Context, id uint) error
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) List(ctx context.Context, params query.Params) ([]db_models.Region, int64, error) {
	return listPage[db_models.Region](ctx, r.db, params, db_models.RegionAssociations...)
}

func (r *regionRepository) GetByID(ctx context.Context, id uint) (*db_models.Region, error) {
	return findByID[db_models.Region](ctx, r.db, id, db_models.RegionAssociations...)
}

func (r *regionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Region{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *regionRepository) Create(ctx context.Context, region *db_models.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *regionRepository) Update(ctx context.Context, region *db_models.Region) error {
	return updateColumns(ctx, r.db, region)
}

// Delete refuses with ErrHasDependents while hotels, places or tours still
// belong to the region. Events are detached instead.
func (r *regionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&db_models.Hotel{},
			&db_models.Place{},
			&db_models.OneDayTour{},
			&db_models.MultiDayTour{},
			&db_models.AutorTour{},
		}
		for _, model := range owned {
			var count int64
			if err := tx.Model(model).Where("region_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrHasDependents
			}
		}

		if err := tx.Model(&db_models.Event{}).Where("region_id = ?", id).Update("region_id", nil).Error; err != nil {
			return err
		}

		return deleteRow[db_models.Region](tx, id)
	})
}
