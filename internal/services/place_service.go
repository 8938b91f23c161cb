package services

import (
	"context"

	"go.uber.org/zap"
	"tourcms/internal/models/db_models"
	"tourcms/internal/models/request_models"
	"tourcms/internal/repositories"
	"tourcms/pkg/utils"
)

type PlaceServiceInterface interface {
	List(ctx context.Context, req ListRequest) (*Page[db_models.Place], error)
	Get(ctx context.Context, id uint) (*db_models.Place, error)
	Create(ctx context.Context, req request_models.CreatePlaceRequest) (*db_models.Place, error)
	Update(ctx context.Context, id uint, req request_models.UpdatePlaceRequest) (*db_models.Place, error)
	Delete(ctx context.Context, id uint) error
}

type PlaceService struct {
	placeRepository  repositories.PlaceRepository
	regionRepository repositories.RegionRepository
	log              *zap.Logger
}

func NewPlaceService(placeRepository repositories.PlaceRepository, regionRepository repositories.RegionRepository, log *zap.Logger) PlaceServiceInterface {
	return &PlaceService{
		placeRepository:  placeRepository,
		regionRepository: regionRepository,
		log:              log.Named("places"),
	}
}

func (s *PlaceService) List(ctx context.Context, req ListRequest) (*Page[db_models.Place], error) {
	return listResource(ctx, s.log, placeSchema, req, s.placeRepository.List)
}

func (s *PlaceService) Get(ctx context.Context, id uint) (*db_models.Place, error) {
	return load(ctx, s.log, id, s.placeRepository.GetByID, utils.ErrPlaceNotFound)
}

func (s *PlaceService) Create(ctx context.Context, req request_models.CreatePlaceRequest) (*db_models.Place, error) {
	if err := ensureRegion(ctx, s.log, s.regionRepository, req.RegionID.Uint()); err != nil {
		return nil, err
	}

	place := req.ToModel()
	if err := s.placeRepository.Create(ctx, place); err != nil {
		return nil, storeError(s.log, "create place", 0, err, utils.ErrPlaceNotFound)
	}
	return place, nil
}

func (s *PlaceService) Update(ctx context.Context, id uint, req request_models.UpdatePlaceRequest) (*db_models.Place, error) {
	place, err := load(ctx, s.log, id, s.placeRepository.GetByID, utils.ErrPlaceNotFound)
	if err != nil {
		return nil, err
	}
	if regionID, ok := req.NewRegionID(); ok {
		if err := ensureRegion(ctx, s.log, s.regionRepository, regionID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(place)
	if err := s.placeRepository.Update(ctx, place); err != nil {
		return nil, storeError(s.log, "update place", id, err, utils.ErrPlaceNotFound)
	}
	return load(ctx, s.log, id, s.placeRepository.GetByID, utils.ErrPlaceNotFound)
}

func (s *PlaceService) Delete(ctx context.Context, id uint) error {
	if err := s.placeRepository.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete place", id, err, utils.ErrPlaceNotFound)
	}
	return nil
}
