package services

import (
	"context"

	"go.uber.org/zap"
	"tourcms/internal/models/db_models"
	"tourcms/internal/models/request_models"
	"tourcms/internal/repositories"
	"tourcms/pkg/utils"
)

type MultiDayTourServiceInterface interface {
	List(ctx context.Context, req ListRequest) (*Page[db_models.MultiDayTour], error)
	Get(ctx context.Context, id uint) (*db_models.MultiDayTour, error)
	Create(ctx context.Context, req request_models.CreateMultiDayTourRequest) (*db_models.MultiDayTour, error)
	Update(ctx context.Context, id uint, req request_models.UpdateMultiDayTourRequest) (*db_models.MultiDayTour, error)
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, ids []uint) error
}

type MultiDayTourService struct {
	tourRepository   repositories.MultiDayTourRepository
	regionRepository repositories.RegionRepository
	log              *zap.Logger
}

func NewMultiDayTourService(tourRepository repositories.MultiDayTourRepository, regionRepository repositories.RegionRepository, log *zap.Logger) MultiDayTourServiceInterface {
	return &MultiDayTourService{
		tourRepository:   tourRepository,
		regionRepository: regionRepository,
		log:              log.Named("multi_day_tours"),
	}
}

func (s *MultiDayTourService) List(ctx context.Context, req ListRequest) (*Page[db_models.MultiDayTour], error) {
	return listResource(ctx, s.log, multiDayTourSchema, req, s.tourRepository.List)
}

func (s *MultiDayTourService) Get(ctx context.Context, id uint) (*db_models.MultiDayTour, error) {
	return load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrMultiDayTourNotFound)
}

// Create appends the tour after the current last one unless the request
// names an order explicitly.
func (s *MultiDayTourService) Create(ctx context.Context, req request_models.CreateMultiDayTourRequest) (*db_models.MultiDayTour, error) {
	if err := ensureRegion(ctx, s.log, s.regionRepository, req.RegionID.Uint()); err != nil {
		return nil, err
	}

	tour := req.ToModel()
	var err error
	if req.Order != nil {
		err = s.tourRepository.Create(ctx, tour)
	} else {
		err = s.tourRepository.CreateAtEnd(ctx, tour)
	}
	if err != nil {
		return nil, storeError(s.log, "create multi-day tour", 0, err, utils.ErrMultiDayTourNotFound)
	}
	return tour, nil
}

func (s *MultiDayTourService) Update(ctx context.Context, id uint, req request_models.UpdateMultiDayTourRequest) (*db_models.MultiDayTour, error) {
	tour, err := load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrMultiDayTourNotFound)
	if err != nil {
		return nil, err
	}
	if regionID, ok := req.NewRegionID(); ok {
		if err := ensureRegion(ctx, s.log, s.regionRepository, regionID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(tour)
	if err := s.tourRepository.Update(ctx, tour); err != nil {
		return nil, storeError(s.log, "update multi-day tour", id, err, utils.ErrMultiDayTourNotFound)
	}
	return load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrMultiDayTourNotFound)
}

func (s *MultiDayTourService) Delete(ctx context.Context, id uint) error {
	if err := s.tourRepository.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete multi-day tour", id, err, utils.ErrMultiDayTourNotFound)
	}
	return nil
}

// Reorder gives each listed tour the order equal to its position.
func (s *MultiDayTourService) Reorder(ctx context.Context, ids []uint) error {
	if err := s.tourRepository.Reorder(ctx, ids); err != nil {
		return storeError(s.log, "reorder multi-day tours", 0, err, utils.ErrMultiDayTourNotFound)
	}
	s.log.Info("multi-day tours reordered", zap.Int("count", len(ids)))
	return nil
}
