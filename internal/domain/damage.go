package domain

// Damage tags the kind of damage a character deals. Each tag corresponds
// 1:1 to one character variant's capability.
type Damage int

const (
	Physical Damage = iota // Warrior
	Magical                // Wizard
	Ranged                 // Archer
)

func (d Damage) String() string {
	switch d {
	case Physical:
		return "physical"
	case Magical:
		return "magical"
	case Ranged:
		return "ranged"
	default:
		return "unknown"
	}
}
