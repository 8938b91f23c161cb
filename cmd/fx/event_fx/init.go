package event_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tourcms/internal/repositories"
	"tourcms/internal/services"
)

var Module = fx.Provide(provideEventRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository, regionRepo repositories.RegionRepository, log *zap.Logger) services.EventServiceInterface {
	return services.NewEventService(eventRepo, regionRepo, log)
}
