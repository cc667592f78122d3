// Package roster generates armies for the simulator.
package roster

import (
	"combat-sim/internal/config"
	"combat-sim/internal/domain"
	"fmt"
	"math/rand/v2"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// Squad is a named, ordered army with a generated ID.
type Squad struct {
	ID    string
	Name  string
	Units []domain.Character
}

var variants = []domain.Character{domain.Warrior{}, domain.Wizard{}, domain.Archer{}}

type Generator struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// New builds a generator from an explicit seed, for reproducible armies.
func New(seed uint64, logger zerolog.Logger) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewPCG(seed, 0)),
		logger: logger,
	}
}

// NewGenerator builds a generator from the configuration. A zero seed means
// pick one at random.
func NewGenerator(cfg *config.Config, logger zerolog.Logger) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Debug().Uint64("seed", seed).Msg("roster generator seeded")
	return New(seed, logger)
}

// Army returns size characters drawn uniformly from the three variants.
func (g *Generator) Army(size int) []domain.Character {
	army := make([]domain.Character, size)
	for i := range army {
		army[i] = variants[g.rng.IntN(len(variants))]
	}
	return army
}

// Squads returns count squads of the given size, each with a fresh nanoid.
func (g *Generator) Squads(count, size int) ([]Squad, error) {
	squads := make([]Squad, 0, count)
	for i := 0; i < count; i++ {
		id, err := gonanoid.New()
		if err != nil {
			return nil, fmt.Errorf("failed to generate squad id: %w", err)
		}
		squads = append(squads, Squad{
			ID:    id,
			Name:  fmt.Sprintf("squad-%d", i+1),
			Units: g.Army(size),
		})
	}
	g.logger.Debug().Int("squad_count", count).Int("army_size", size).Msg("squads generated")
	return squads, nil
}
