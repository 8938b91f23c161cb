package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tourcms/internal/query"
)

// ErrHasDependents is returned when a row cannot be deleted because other
// rows still reference it.
var ErrHasDependents = errors.New("record has dependents")

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func withPreloads(db *gorm.DB, preloads []string) *gorm.DB {
	for _, name := range preloads {
		db = db.Preload(name, byID)
	}
	return db
}

// listPage counts the rows matching params and fetches the requested
// window with preloads attached.
func listPage[T any](ctx context.Context, db *gorm.DB, params query.Params, preloads ...string) ([]T, int64, error) {
	var total int64
	if err := params.Where(db.WithContext(ctx).Model(new(T))).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0)
	limit := params.Limit(total)
	if limit == 0 {
		return items, total, nil
	}

	q := withPreloads(params.Order(params.Where(db.WithContext(ctx))), preloads)
	if err := q.Offset(params.Offset()).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// findByID returns nil, nil when no row has the id.
func findByID[T any](ctx context.Context, db *gorm.DB, id uint, preloads ...string) (*T, error) {
	var item T
	err := withPreloads(db.WithContext(ctx), preloads).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// updateColumns writes every column of entity except its key, creation
// time and associations. A missing row yields gorm.ErrRecordNotFound.
func updateColumns(ctx context.Context, db *gorm.DB, entity interface{}) error {
	result := db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteWithChildren removes the children referencing id through
// foreignKey and then the parent row itself, in one transaction.
func deleteWithChildren[P any, C any](ctx context.Context, db *gorm.DB, id uint, foreignKey string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(clause.Eq{Column: clause.Column{Name: foreignKey}, Value: id}).Delete(new(C)).Error; err != nil {
			return err
		}
		return deleteRow[P](tx, id)
	})
}

func deleteRow[P any](tx *gorm.DB, id uint) error {
	result := tx.Delete(new(P), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
