package place_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tourcms/internal/repositories"
	"tourcms/internal/services"
)

var Module = fx.Provide(providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, regionRepo repositories.RegionRepository, log *zap.Logger) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, regionRepo, log)
}
