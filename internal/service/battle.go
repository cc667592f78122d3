package service

import (
	"combat-sim/internal/combat"
	"combat-sim/internal/constants"
	"combat-sim/internal/domain"
	"combat-sim/internal/maybe"
	"combat-sim/internal/roster"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type SquadReport struct {
	SquadID string
	Squad   string
	Totals  combat.TotalDamage
}

type BattleService struct {
	logger zerolog.Logger
}

func NewBattleService(logger zerolog.Logger) *BattleService {
	return &BattleService{logger: logger}
}

// RunSkirmish evaluates every squad's attack totals. Squads are independent,
// so they are evaluated concurrently; the combat core itself stays pure.
func (s *BattleService) RunSkirmish(ctx context.Context, squads []roster.Squad) ([]SquadReport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.SimulationTimeout)
	defer cancel()

	runID := uuid.New().String()
	log := s.logger.With().Str("run_id", runID).Logger()
	log.Info().Int("squad_count", len(squads)).Msg("skirmish started")

	g, gCtx := errgroup.WithContext(ctx)
	reports := make([]SquadReport, len(squads))
	for i, squad := range squads {
		g.Go(func() error {
			squadCtx, cancel := context.WithTimeout(gCtx, constants.SquadTimeout)
			defer cancel()
			if err := squadCtx.Err(); err != nil {
				return err
			}
			totals := combat.Attack(squad.Units)
			reports[i] = SquadReport{SquadID: squad.ID, Squad: squad.Name, Totals: totals}
			log.Info().
				Str("squad_id", squad.ID).
				Str("squad", squad.Name).
				Int("units", len(squad.Units)).
				Int("physical", totals.Physical).
				Int("magical", totals.Magical).
				Int("ranged", totals.Ranged).
				Msg("squad attack resolved")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("skirmish aborted")
		return nil, fmt.Errorf("skirmish aborted: %w", err)
	}

	log.Info().Int("squad_count", len(squads)).Msg("skirmish complete")
	return reports, nil
}

// Engage runs every targeted action against a possibly-absent target and
// logs each outcome. Failures here are expected values, logged at warn
// rather than treated as errors of the service.
func (s *BattleService) Engage(target maybe.Maybe[domain.Character]) []combat.Outcome {
	outcomes := []combat.Outcome{
		combat.CheckTargetAndSmash(target),
		combat.CheckTargetAndBurn(target),
		combat.CheckTargetAndShoot(target),
	}
	actions := []string{"smash", "burn", "shoot"}

	for i, outcome := range outcomes {
		if damage, ok := outcome.Value(); ok {
			s.logger.Info().
				Str("action", actions[i]).
				Str("damage", damage.String()).
				Msg("action landed")
			continue
		}
		f, _ := outcome.Failure()
		s.logger.Warn().
			Str("action", actions[i]).
			Str("kind", f.Kind().String()).
			Err(f).
			Msg("action rejected")
	}

	return outcomes
}
