package repositories

import (
	"context"

	"gorm.io/gorm"
	"tourcms/internal/models/db_models"
	"tourcms/internal/query"
)

type EventRepository interface {
	List(ctx context.Context, params query.Params) ([]db_models.Event, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.Event, error)
	Create(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, event *db_models.Event) error
	Delete(ctx context.Context, id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context, params query.Params) ([]db_models.Event, int64, error) {
	return listPage[db_models.Event](ctx, r.db, params, "Region")
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*db_models.Event, error) {
	return findByID[db_models.Event](ctx, r.db, id, "Region")
}

func (r *eventRepository) Create(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *db_models.Event) error {
	return updateColumns(ctx, r.db, event)
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return deleteRow[db_models.Event](r.db.WithContext(ctx), id)
}
