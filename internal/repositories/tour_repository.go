package repositories

import (
	"context"

	"gorm.io/gorm"
	"tourcms/internal/models/db_models"
	"tourcms/internal/query"
)

type OneDayTourRepository interface {
	List(ctx context.Context, params query.Params) ([]db_models.OneDayTour, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.OneDayTour, error)
	Create(ctx context.Context, tour *db_models.OneDayTour) error
	Update(ctx context.Context, tour *db_models.OneDayTour) error
	Delete(ctx context.Context, id uint) error
}

type oneDayTourRepository struct {
	db *gorm.DB
}

func NewOneDayTourRepository(db *gorm.DB) OneDayTourRepository {
	return &oneDayTourRepository{db: db}
}

var oneDayPreloads = []string{"Region", "InfoByDays"}

func (r *oneDayTourRepository) List(ctx context.Context, params query.Params) ([]db_models.OneDayTour, int64, error) {
	return listPage[db_models.OneDayTour](ctx, r.db, params, oneDayPreloads...)
}

func (r *oneDayTourRepository) GetByID(ctx context.Context, id uint) (*db_models.OneDayTour, error) {
	return findByID[db_models.OneDayTour](ctx, r.db, id, oneDayPreloads...)
}

func (r *oneDayTourRepository) Create(ctx context.Context, tour *db_models.OneDayTour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *oneDayTourRepository) Update(ctx context.Context, tour *db_models.OneDayTour) error {
	return updateColumns(ctx, r.db, tour)
}

func (r *oneDayTourRepository) Delete(ctx context.Context, id uint) error {
	return deleteWithChildren[db_models.OneDayTour, db_models.OneDayInfo](ctx, r.db, id, "one_day_tour_id")
}

type AutorTourRepository interface {
	List(ctx context.Context, params query.Params) ([]db_models.AutorTour, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.AutorTour, error)
	Create(ctx context.Context, tour *db_models.AutorTour) error
	Update(ctx context.Context, tour *db_models.AutorTour) error
	Delete(ctx context.Context, id uint) error
}

type autorTourRepository struct {
	db *gorm.DB
}

func NewAutorTourRepository(db *gorm.DB) AutorTourRepository {
	return &autorTourRepository{db: db}
}

var autorPreloads = []string{"Region", "InfoByDaysAutor"}

func (r *autorTourRepository) List(ctx context.Context, params query.Params) ([]db_models.AutorTour, int64, error) {
	return listPage[db_models.AutorTour](ctx, r.db, params, autorPreloads...)
}

func (r *autorTourRepository) GetByID(ctx context.Context, id uint) (*db_models.AutorTour, error) {
	return findByID[db_models.AutorTour](ctx, r.db, id, autorPreloads...)
}

func (r *autorTourRepository) Create(ctx context.Context, tour *db_models.AutorTour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *autorTourRepository) Update(ctx context.Context, tour *db_models.AutorTour) error {
	return updateColumns(ctx, r.db, tour)
}

func (r *autorTourRepository) Delete(ctx context.Context, id uint) error {
	return deleteWithChildren[db_models.AutorTour, db_models.AutorDayInfo](ctx, r.db, id, "autor_tour_id")
}
