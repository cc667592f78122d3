package combat

import (
	"combat-sim/internal/domain"
	"combat-sim/internal/maybe"
)

// SmashOption is the best-effort form of Smash: present damage on success,
// absent on failure. The failure diagnostic is intentionally dropped for
// callers that only need a yes/no signal.
func SmashOption(c domain.Character) maybe.Maybe[domain.Damage] {
	return Smash(c).Discard()
}

// BurnOption is the best-effort form of Burn.
func BurnOption(c domain.Character) maybe.Maybe[domain.Damage] {
	return Burn(c).Discard()
}

// ShootOption is the best-effort form of Shoot.
func ShootOption(c domain.Character) maybe.Maybe[domain.Damage] {
	return Shoot(c).Discard()
}
