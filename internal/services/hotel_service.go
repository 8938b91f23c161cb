package services

import (
	"context"

	"go.uber.org/zap"
	"tourcms/internal/models/db_models"
	"tourcms/internal/models/request_models"
	"tourcms/internal/repositories"
	"tourcms/pkg/utils"
)

type HotelServiceInterface interface {
	List(ctx context.Context, req ListRequest) (*Page[db_models.Hotel], error)
	Get(ctx context.Context, id uint) (*db_models.Hotel, error)
	Create(ctx context.Context, req request_models.CreateHotelRequest) (*db_models.Hotel, error)
	Update(ctx context.Context, id uint, req request_models.UpdateHotelRequest) (*db_models.Hotel, error)
	Delete(ctx context.Context, id uint) error
}

type HotelService struct {
	hotelRepository  repositories.HotelRepository
	regionRepository repositories.RegionRepository
	log              *zap.Logger
}

func NewHotelService(hotelRepository repositories.HotelRepository, regionRepository repositories.RegionRepository, log *zap.Logger) HotelServiceInterface {
	return &HotelService{
		hotelRepository:  hotelRepository,
		regionRepository: regionRepository,
		log:              log.Named("hotels"),
	}
}

func (s *HotelService) List(ctx context.Context, req ListRequest) (*Page[db_models.Hotel], error) {
	return listResource(ctx, s.log, hotelSchema, req, s.hotelRepository.List)
}

func (s *HotelService) Get(ctx context.Context, id uint) (*db_models.Hotel, error) {
	return load(ctx, s.log, id, s.hotelRepository.GetByID, utils.ErrHotelNotFound)
}

func (s *HotelService) Create(ctx context.Context, req request_models.CreateHotelRequest) (*db_models.Hotel, error) {
	if err := ensureRegion(ctx, s.log, s.regionRepository, req.RegionID.Uint()); err != nil {
		return nil, err
	}

	hotel := req.ToModel()
	if err := s.hotelRepository.Create(ctx, hotel); err != nil {
		return nil, storeError(s.log, "create hotel", 0, err, utils.ErrHotelNotFound)
	}
	return hotel, nil
}

func (s *HotelService) Update(ctx context.Context, id uint, req request_models.UpdateHotelRequest) (*db_models.Hotel, error) {
	hotel, err := load(ctx, s.log, id, s.hotelRepository.GetByID, utils.ErrHotelNotFound)
	if err != nil {
		return nil, err
	}
	if regionID, ok := req.NewRegionID(); ok {
		if err := ensureRegion(ctx, s.log, s.regionRepository, regionID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(hotel)
	if err := s.hotelRepository.Update(ctx, hotel); err != nil {
		return nil, storeError(s.log, "update hotel", id, err, utils.ErrHotelNotFound)
	}
	return load(ctx, s.log, id, s.hotelRepository.GetByID, utils.ErrHotelNotFound)
}

func (s *HotelService) Delete(ctx context.Context, id uint) error {
	if err := s.hotelRepository.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete hotel", id, err, utils.ErrHotelNotFound)
	}
	return nil
}
