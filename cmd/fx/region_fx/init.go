package region_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tourcms/internal/repositories"
	"tourcms/internal/services"
)

var Module = fx.Provide(provideRegionRepo, provideRegionService)

func provideRegionRepo(db *gorm.DB) repositories.RegionRepository {
	return repositories.NewRegionRepository(db)
}

func provideRegionService(regionRepo repositories.RegionRepository, log *zap.Logger) services.RegionServiceInterface {
	return services.NewRegionService(regionRepo, log)
}
