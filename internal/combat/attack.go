package combat

import (
	"combat-sim/internal/domain"
	"combat-sim/internal/maybe"
)

// TotalDamage counts attack successes per damage kind. All three counts are
// populated on every aggregation; a kind nobody matched stays zero.
type TotalDamage struct {
	Physical int
	Magical  int
	Ranged   int
}

// Sum returns the total number of successful attacks. The classifiers are
// mutually exclusive and exhaustive, so for any army Sum equals the army
// size.
func (t TotalDamage) Sum() int {
	return t.Physical + t.Magical + t.Ranged
}

// Attack applies each best-effort action across the whole army and tallies
// the successes per damage kind. The army may be empty and may contain
// duplicates; element order never affects the result.
func Attack(army []domain.Character) TotalDamage {
	return TotalDamage{
		Physical: len(maybe.Collect(army, SmashOption)),
		Magical:  len(maybe.Collect(army, BurnOption)),
		Ranged:   len(maybe.Collect(army, ShootOption)),
	}
}
