package main

import (
	"combat-sim/internal/config"
	"combat-sim/internal/domain"
	fxmodules "combat-sim/internal/fx"
	"combat-sim/internal/logger"
	"combat-sim/internal/maybe"
	"combat-sim/internal/roster"
	"combat-sim/internal/service"
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runSimulation),
	).Run()
}

func runSimulation(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	generator *roster.Generator,
	battle *service.BattleService,
	cfg *config.Config,
	log zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log := logger.SetLevel(logger.Parse(cfg.LogLevel))

				squads, err := generator.Squads(cfg.SquadCount, cfg.ArmySize)
				if err != nil {
					log.Fatal().Err(err).Msg("failed to generate squads")
				}

				if _, err := battle.RunSkirmish(context.Background(), squads); err != nil {
					log.Fatal().Err(err).Msg("skirmish failed")
				}

				// Targeted-action demo: one valid target, one absent.
				battle.Engage(maybe.Some[domain.Character](domain.Warrior{}))
				battle.Engage(maybe.None[domain.Character]())

				if err := shutdowner.Shutdown(); err != nil {
					log.Error().Err(err).Msg("shutdown failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("simulator stopped")
			return nil
		},
	})
}
