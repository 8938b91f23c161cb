package repositories

import (
	"context"

	"gorm.io/gorm"
	"tourcms/internal/models/db_models"
	"tourcms/internal/query"
)

type PlaceRepository interface {
	List(ctx context.Context, params query.Params) ([]db_models.Place, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.Place, error)
	Create(ctx context.Context, place *db_models.Place) error
	Update(ctx context.Context, place *db_models.Place) error
	Delete(ctx context.Context, id uint) error
}

var placePreloads = []string{"Region", "InfoPlaces"}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) List(ctx context.Context, params query.Params) ([]db_models.Place, int64, error) {
	return listPage[db_models.Place](ctx, r.db, params, placePreloads...)
}

func (r *placeRepository) GetByID(ctx context.Context, id uint) (*db_models.Place, error) {
	return findByID[db_models.Place](ctx, r.db, id, placePreloads...)
}

func (r *placeRepository) Create(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) Update(ctx context.Context, place *db_models.Place) error {
	return updateColumns(ctx, r.db, place)
}

func (r *placeRepository) Delete(ctx context.Context, id uint) error {
	return deleteWithChildren[db_models.Place, db_models.InfoPlace](ctx, r.db, id, "place_id")
}
