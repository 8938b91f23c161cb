package repositories

import (
	"context"

	"gorm.io/gorm"
	"tourcms/internal/models/db_models"
	"tourcms/internal/query"
)

type HotelRepository interface {
	List(ctx context.Context, params query.Params) ([]db_models.Hotel, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.Hotel, error)
	Create(ctx context.Context, hotel *db_models.Hotel) error
	Update(ctx context.Context, hotel *db_models.Hotel) error
	Delete(ctx context.Context, id uint) error
}

var hotelPreloads = []string{"Region", "Comforts"}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) List(ctx context.Context, params query.Params) ([]db_models.Hotel, int64, error) {
	return listPage[db_models.Hotel](ctx, r.db, params, hotelPreloads...)
}

func (r *hotelRepository) GetByID(ctx context.Context, id uint) (*db_models.Hotel, error) {
	return findByID[db_models.Hotel](ctx, r.db, id, hotelPreloads...)
}

// Create inserts the hotel together with its comforts.
func (r *hotelRepository) Create(ctx context.Context, hotel *db_models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) Update(ctx context.Context, hotel *db_models.Hotel) error {
	return updateColumns(ctx, r.db, hotel)
}

func (r *hotelRepository) Delete(ctx context.Context, id uint) error {
	return deleteWithChildren[db_models.Hotel, db_models.Comfort](ctx, r.db, id, "hotel_id")
}
