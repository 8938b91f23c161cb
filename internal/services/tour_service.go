package services

import (
	"context"

	"go.uber.org/zap"
	"tourcms/internal/models/db_models"
	"tourcms/internal/models/request_models"
	"tourcms/internal/repositories"
	"tourcms/pkg/utils"
)

type OneDayTourServiceInterface interface {
	List(ctx context.Context, req ListRequest) (*Page[db_models.OneDayTour], error)
	Get(ctx context.Context, id uint) (*db_models.OneDayTour, error)
	Create(ctx context.Context, req request_models.CreateOneDayTourRequest) (*db_models.OneDayTour, error)
	Update(ctx context.Context, id uint, req request_models.TourPatch) (*db_models.OneDayTour, error)
	Delete(ctx context.Context, id uint) error
}

type OneDayTourService struct {
	tourRepository   repositories.OneDayTourRepository
	regionRepository repositories.RegionRepository
	log              *zap.Logger
}

func NewOneDayTourService(tourRepository repositories.OneDayTourRepository, regionRepository repositories.RegionRepository, log *zap.Logger) OneDayTourServiceInterface {
	return &OneDayTourService{
		tourRepository:   tourRepository,
		regionRepository: regionRepository,
		log:              log.Named("one_day_tours"),
	}
}

func (s *OneDayTourService) List(ctx context.Context, req ListRequest) (*Page[db_models.OneDayTour], error) {
	return listResource(ctx, s.log, oneDayTourSchema, req, s.tourRepository.List)
}

func (s *OneDayTourService) Get(ctx context.Context, id uint) (*db_models.OneDayTour, error) {
	return load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrOneDayTourNotFound)
}

func (s *OneDayTourService) Create(ctx context.Context, req request_models.CreateOneDayTourRequest) (*db_models.OneDayTour, error) {
	if err := ensureRegion(ctx, s.log, s.regionRepository, req.RegionID.Uint()); err != nil {
		return nil, err
	}

	tour := req.ToModel()
	if err := s.tourRepository.Create(ctx, tour); err != nil {
		return nil, storeError(s.log, "create one-day tour", 0, err, utils.ErrOneDayTourNotFound)
	}
	return tour, nil
}

func (s *OneDayTourService) Update(ctx context.Context, id uint, req request_models.TourPatch) (*db_models.OneDayTour, error) {
	tour, err := load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrOneDayTourNotFound)
	if err != nil {
		return nil, err
	}
	if regionID, ok := req.NewRegionID(); ok {
		if err := ensureRegion(ctx, s.log, s.regionRepository, regionID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(&tour.TourInfo, &tour.RegionID)
	if err := s.tourRepository.Update(ctx, tour); err != nil {
		return nil, storeError(s.log, "update one-day tour", id, err, utils.ErrOneDayTourNotFound)
	}
	return load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrOneDayTourNotFound)
}

func (s *OneDayTourService) Delete(ctx context.Context, id uint) error {
	if err := s.tourRepository.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete one-day tour", id, err, utils.ErrOneDayTourNotFound)
	}
	return nil
}

type AutorTourServiceInterface interface {
	List(ctx context.Context, req ListRequest) (*Page[db_models.AutorTour], error)
	Get(ctx context.Context, id uint) (*db_models.AutorTour, error)
	Create(ctx context.Context, req request_models.CreateAutorTourRequest) (*db_models.AutorTour, error)
	Update(ctx context.Context, id uint, req request_models.TourPatch) (*db_models.AutorTour, error)
	Delete(ctx context.Context, id uint) error
}

type AutorTourService struct {
	tourRepository   repositories.AutorTourRepository
	regionRepository repositories.RegionRepository
	log              *zap.Logger
}

func NewAutorTourService(tourRepository repositories.AutorTourRepository, regionRepository repositories.RegionRepository, log *zap.Logger) AutorTourServiceInterface {
	return &AutorTourService{
		tourRepository:   tourRepository,
		regionRepository: regionRepository,
		log:              log.Named("autor_tours"),
	}
}

func (s *AutorTourService) List(ctx context.Context, req ListRequest) (*Page[db_models.AutorTour], error) {
	return listResource(ctx, s.log, autorTourSchema, req, s.tourRepository.List)
}

func (s *AutorTourService) Get(ctx context.Context, id uint) (*db_models.AutorTour, error) {
	return load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrAutorTourNotFound)
}

func (s *AutorTourService) Create(ctx context.Context, req request_models.CreateAutorTourRequest) (*db_models.AutorTour, error) {
	if err := ensureRegion(ctx, s.log, s.regionRepository, req.RegionID.Uint()); err != nil {
		return nil, err
	}

	tour := req.ToModel()
	if err := s.tourRepository.Create(ctx, tour); err != nil {
		return nil, storeError(s.log, "create author tour", 0, err, utils.ErrAutorTourNotFound)
	}
	return tour, nil
}

func (s *AutorTourService) Update(ctx context.Context, id uint, req request_models.TourPatch) (*db_models.AutorTour, error) {
	tour, err := load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrAutorTourNotFound)
	if err != nil {
		return nil, err
	}
	if regionID, ok := req.NewRegionID(); ok {
		if err := ensureRegion(ctx, s.log, s.regionRepository, regionID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(&tour.TourInfo, &tour.RegionID)
	if err := s.tourRepository.Update(ctx, tour); err != nil {
		return nil, storeError(s.log, "update author tour", id, err, utils.ErrAutorTourNotFound)
	}
	return load(ctx, s.log, id, s.tourRepository.GetByID, utils.ErrAutorTourNotFound)
}

func (s *AutorTourService) Delete(ctx context.Context, id uint) error {
	if err := s.tourRepository.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete author tour", id, err, utils.ErrAutorTourNotFound)
	}
	return nil
}
