package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tourcms/cmd/fx/config_fx"
	"tourcms/cmd/fx/controllers_fx"
	"tourcms/cmd/fx/db_fx"
	"tourcms/cmd/fx/event_fx"
	"tourcms/cmd/fx/hotel_fx"
	"tourcms/cmd/fx/logger_fx"
	"tourcms/cmd/fx/place_fx"
	"tourcms/cmd/fx/region_fx"
	"tourcms/cmd/fx/storage_fx"
	"tourcms/cmd/fx/tours_fx"
	"tourcms/internal/api"
	"tourcms/internal/config"
	"tourcms/pkg/utils"
)

// @title Tour CMS API
// @version 1.0
// @description Admin API for regions, hotels, events, places and tours.
// @BasePath /api
func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		region_fx.Module,
		hotel_fx.Module,
		event_fx.Module,
		place_fx.Module,
		tours_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(utils.RegisterValidators),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
