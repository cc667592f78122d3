package combat

import (
	"combat-sim/internal/domain"
	"combat-sim/internal/maybe"
)

// NoUnitSelectedMessage is the diagnostic for an absent target, shared by
// every targeted action.
const NoUnitSelectedMessage = "No unit currently selected"

func checkTarget(target maybe.Maybe[domain.Character], validate func(domain.Character) Outcome) Outcome {
	c, ok := target.Get()
	if !ok {
		return miss(noTarget(NoUnitSelectedMessage))
	}
	return validate(c)
}

// CheckTargetAndSmash requires a selected target, then validates it for a
// smash. An absent target fails with NoTarget; a present non-warrior fails
// with InvalidTarget.
func CheckTargetAndSmash(target maybe.Maybe[domain.Character]) Outcome {
	return checkTarget(target, Smash)
}

// CheckTargetAndBurn requires a selected target, then validates it for a burn.
func CheckTargetAndBurn(target maybe.Maybe[domain.Character]) Outcome {
	return checkTarget(target, Burn)
}

// CheckTargetAndShoot requires a selected target, then validates it for a
// shot.
func CheckTargetAndShoot(target maybe.Maybe[domain.Character]) Outcome {
	return checkTarget(target, Shoot)
}
