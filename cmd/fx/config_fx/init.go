package config_fx

import (
	"go.uber.org/fx"

	"safesteps/internal/config"
)

var Module = fx.Provide(config.Load)
