package services

import (
	"context"

	"go.uber.org/zap"
	"tourcms/internal/models/db_models"
	"tourcms/internal/models/request_models"
	"tourcms/internal/repositories"
	"tourcms/pkg/utils"
)

type RegionServiceInterface interface {
	List(ctx context.Context, req ListRequest) (*Page[db_models.Region], error)
	Get(ctx context.Context, id uint) (*db_models.Region, error)
	Create(ctx context.Context, req request_models.CreateRegionRequest) (*db_models.Region, error)
	Update(ctx context.Context, id uint, req request_models.UpdateRegionRequest) (*db_models.Region, error)
	Delete(ctx context.Context, id uint) error
}

type RegionService struct {
	regionRepository repositories.RegionRepository
	log              *zap.Logger
}

func NewRegionService(regionRepository repositories.RegionRepository, log *zap.Logger) RegionServiceInterface {
	return &RegionService{
		regionRepository: regionRepository,
		log:              log.Named("regions"),
	}
}

func (s *RegionService) List(ctx context.Context, req ListRequest) (*Page[db_models.Region], error) {
	return listResource(ctx, s.log, regionSchema, req, s.regionRepository.List)
}

func (s *RegionService) Get(ctx context.Context, id uint) (*db_models.Region, error) {
	return load(ctx, s.log, id, s.regionRepository.GetByID, utils.ErrRegionNotFound)
}

func (s *RegionService) Create(ctx context.Context, req request_models.CreateRegionRequest) (*db_models.Region, error) {
	region := req.ToModel()
	if err := s.regionRepository.Create(ctx, region); err != nil {
		return nil, storeError(s.log, "create region", 0, err, utils.ErrRegionNotFound)
	}
	return region, nil
}

func (s *RegionService) Update(ctx context.Context, id uint, req request_models.UpdateRegionRequest) (*db_models.Region, error) {
	region, err := load(ctx, s.log, id, s.regionRepository.GetByID, utils.ErrRegionNotFound)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(region)
	if err := s.regionRepository.Update(ctx, region); err != nil {
		return nil, storeError(s.log, "update region", id, err, utils.ErrRegionNotFound)
	}
	return load(ctx, s.log, id, s.regionRepository.GetByID, utils.ErrRegionNotFound)
}

func (s *RegionService) Delete(ctx context.Context, id uint) error {
	if err := s.regionRepository.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete region", id, err, utils.ErrRegionNotFound)
	}
	return nil
}
