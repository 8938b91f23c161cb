package controllers_fx

import (
	"go.uber.org/fx"
	"tourcms/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRegionsController),
	fx.Provide(controllers.NewHotelsController),
	fx.Provide(controllers.NewEventsController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewOneDayToursController),
	fx.Provide(controllers.NewMultiDayToursController),
	fx.Provide(controllers.NewAutorToursController),
	fx.Provide(controllers.NewHealthController))
