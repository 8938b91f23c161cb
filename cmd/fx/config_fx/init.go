package config_fx

import (
	"go.uber.org/fx"
	"tourcms/internal/config"
)

var Module = fx.Provide(config.Load)
