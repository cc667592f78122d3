// Package combat classifies characters against requested actions and
// aggregates best-effort attack results. Every function here is pure and
// synchronous; failures are returned as values, never panics.
package combat

import (
	"combat-sim/internal/domain"
	"combat-sim/internal/failure"
	"combat-sim/internal/result"
	"fmt"
)

// Outcome is the disjoint result of validating an action against a target.
type Outcome = result.Result[domain.Damage, failure.Failure]

var (
	noTarget      = failure.NewBuilder(failure.NoTarget)
	invalidTarget = failure.NewBuilder(failure.InvalidTarget)
)

func hit(d domain.Damage) Outcome {
	return result.Ok[domain.Damage, failure.Failure](d)
}

func miss(f failure.Failure) Outcome {
	return result.Fail[domain.Damage](f)
}

func cannotPerform(c domain.Character, action string) Outcome {
	return miss(invalidTarget(fmt.Sprintf("%s cannot perform %s", c.Name(), action)))
}

// Smash succeeds with physical damage when c is a warrior, and fails with
// an invalid-target diagnostic otherwise.
func Smash(c domain.Character) Outcome {
	w, ok := domain.AsWarrior(c)
	if !ok {
		return cannotPerform(c, "smash")
	}
	return hit(w.Smash())
}

// Burn succeeds with magical damage when c is a wizard.
func Burn(c domain.Character) Outcome {
	w, ok := domain.AsWizard(c)
	if !ok {
		return cannotPerform(c, "burn")
	}
	return hit(w.Burn())
}

// Shoot succeeds with ranged damage when c is an archer.
func Shoot(c domain.Character) Outcome {
	a, ok := domain.AsArcher(c)
	if !ok {
		return cannotPerform(c, "shoot")
	}
	return hit(a.Shoot())
}
