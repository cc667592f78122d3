package fx

import (
	"combat-sim/internal/config"
	"combat-sim/internal/logger"
	"combat-sim/internal/roster"
	"combat-sim/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(roster.NewGenerator),
	// svc
	fx.Provide(service.NewBattleService),
)
