package tours_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tourcms/internal/repositories"
	"tourcms/internal/services"
)

var Module = fx.Provide(
	provideOneDayTourRepo,
	provideMultiDayTourRepo,
	provideAutorTourRepo,
	services.NewOneDayTourService,
	services.NewMultiDayTourService,
	services.NewAutorTourService,
)

func provideOneDayTourRepo(db *gorm.DB) repositories.OneDayTourRepository {
	return repositories.NewOneDayTourRepository(db)
}

func provideMultiDayTourRepo(db *gorm.DB) repositories.MultiDayTourRepository {
	return repositories.NewMultiDayTourRepository(db)
}

func provideAutorTourRepo(db *gorm.DB) repositories.AutorTourRepository {
	return repositories.NewAutorTourRepository(db)
}
