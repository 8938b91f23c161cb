package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"tourcms/internal/query"
	"tourcms/internal/repositories"
	"tourcms/pkg/utils"
)

// ListRequest carries the raw range, sort and filter query parameters.
type ListRequest struct {
	Range  string
	Sort   string
	Filter string
}

type Page[T any] struct {
	Items        []T
	Total        int64
	ContentRange string
}

func listResource[T any](ctx context.Context, log *zap.Logger, schema query.Schema, req ListRequest, fetch func(context.Context, query.Params) ([]T, int64, error)) (*Page[T], error) {
	params, err := query.Parse(schema, req.Range, req.Sort, req.Filter)
	if err != nil {
		return nil, err
	}

	items, total, err := fetch(ctx, params)
	if err != nil {
		log.Error("list failed", zap.String("resource", schema.Resource), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &Page[T]{Items: items, Total: total, ContentRange: params.ContentRange(total)}, nil
}

// storeError maps a repository error to the sentinel the API layer knows.
func storeError(log *zap.Logger, op string, id uint, err error, notFound error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return utils.ErrRegionReferenceInvalid
	case errors.Is(err, repositories.ErrHasDependents):
		return utils.ErrRegionInUse
	}
	log.Error(op+" failed", zap.Uint("id", id), zap.Error(err))
	return utils.ErrDatabaseError
}

// ensureRegion checks that id references an existing region.
func ensureRegion(ctx context.Context, log *zap.Logger, regions repositories.RegionRepository, id uint) error {
	ok, err := regions.Exists(ctx, id)
	if err != nil {
		log.Error("region lookup failed", zap.Uint("region_id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrRegionReferenceInvalid
	}
	return nil
}

// load fetches a row by id and turns a miss into notFound.
func load[T any](ctx context.Context, log *zap.Logger, id uint, get func(context.Context, uint) (*T, error), notFound error) (*T, error) {
	item, err := get(ctx, id)
	if err != nil {
		log.Error("lookup failed", zap.Uint("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, notFound
	}
	return item, nil
}
