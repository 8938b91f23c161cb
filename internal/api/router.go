package api

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tourcms/docs"
	"tourcms/internal/api/controllers"
	"tourcms/internal/config"
	"tourcms/pkg/middleware"
)

// Controllers groups every handler set the router mounts. Uploads is nil
// when no object storage is configured.
type Controllers struct {
	fx.In

	Regions       *controllers.RegionsController
	Hotels        *controllers.HotelsController
	Events        *controllers.EventsController
	Places        *controllers.PlacesController
	OneDayTours   *controllers.OneDayToursController
	MultiDayTours *controllers.MultiDayToursController
	AutorTours    *controllers.AutorToursController
	Health        *controllers.HealthController
	Uploads       *controllers.UploadsController
}

func NewRouter(cfg *config.Config, log *zap.Logger, ctl Controllers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	docs.SwaggerInfo.BasePath = cfg.Server.APIPrefix

	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(cors.New(corsConfig(cfg.CORS)))

	RegisterRoutes(r, cfg.Server, ctl)

	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Range", middleware.TraceIDHeader},
		ExposeHeaders: []string{"Content-Range", middleware.TraceIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowOrigins
	c.AllowCredentials = true
	return c
}

func RegisterRoutes(r *gin.Engine, server config.ServerConfig, ctl Controllers) {
	r.GET("/health", ctl.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if server.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(server.APIPrefix)

	regions := api.Group("/regions")
	regions.GET("", ctl.Regions.ListRegions)
	regions.POST("", ctl.Regions.CreateRegion)
	regions.GET("/:id", ctl.Regions.GetRegion)
	regions.PUT("/:id", ctl.Regions.UpdateRegion)
	regions.DELETE("/:id", ctl.Regions.DeleteRegion)

	hotels := api.Group("/hotels")
	hotels.GET("", ctl.Hotels.ListHotels)
	hotels.POST("", ctl.Hotels.CreateHotel)
	hotels.GET("/:id", ctl.Hotels.GetHotel)
	hotels.PUT("/:id", ctl.Hotels.UpdateHotel)
	hotels.DELETE("/:id", ctl.Hotels.DeleteHotel)

	events := api.Group("/events")
	events.GET("", ctl.Events.ListEvents)
	events.POST("", ctl.Events.CreateEvent)
	events.GET("/:id", ctl.Events.GetEvent)
	events.PUT("/:id", ctl.Events.UpdateEvent)
	events.DELETE("/:id", ctl.Events.DeleteEvent)

	places := api.Group("/places")
	places.GET("", ctl.Places.ListPlaces)
	places.POST("", ctl.Places.CreatePlace)
	places.GET("/:id", ctl.Places.GetPlace)
	places.PUT("/:id", ctl.Places.UpdatePlace)
	places.DELETE("/:id", ctl.Places.DeletePlace)

	oneDay := api.Group("/onedaytours")
	oneDay.GET("", ctl.OneDayTours.ListOneDayTours)
	oneDay.POST("", ctl.OneDayTours.CreateOneDayTour)
	oneDay.GET("/:id", ctl.OneDayTours.GetOneDayTour)
	oneDay.PUT("/:id", ctl.OneDayTours.UpdateOneDayTour)
	oneDay.DELETE("/:id", ctl.OneDayTours.DeleteOneDayTour)

	multiDay := api.Group("/multidaytours")
	multiDay.GET("", ctl.MultiDayTours.ListMultiDayTours)
	multiDay.POST("", ctl.MultiDayTours.CreateMultiDayTour)
	multiDay.PUT("/order", ctl.MultiDayTours.UpdateOrder)
	multiDay.GET("/:id", ctl.MultiDayTours.GetMultiDayTour)
	multiDay.PUT("/:id", ctl.MultiDayTours.UpdateMultiDayTour)
	multiDay.DELETE("/:id", ctl.MultiDayTours.DeleteMultiDayTour)

	autor := api.Group("/autortours")
	autor.GET("", ctl.AutorTours.ListAutorTours)
	autor.POST("", ctl.AutorTours.CreateAutorTour)
	autor.GET("/:id", ctl.AutorTours.GetAutorTour)
	autor.PUT("/:id", ctl.AutorTours.UpdateAutorTour)
	autor.DELETE("/:id", ctl.AutorTours.DeleteAutorTour)

	if ctl.Uploads != nil {
		api.POST("/uploads", ctl.Uploads.UploadImage)
		r.GET("/uploads/:name", ctl.Uploads.ServeImage)
	}
}
