package hotel_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tourcms/internal/repositories"
	"tourcms/internal/services"
)

var Module = fx.Provide(provideHotelRepo, provideHotelService)

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideHotelService(hotelRepo repositories.HotelRepository, regionRepo repositories.RegionRepository, log *zap.Logger) services.HotelServiceInterface {
	return services.NewHotelService(hotelRepo, regionRepo, log)
}
