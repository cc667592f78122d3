package domain

// Class is the explicit discriminant over the closed set of character
// variants. A character value is exactly one class.
type Class int

const (
	ClassWarrior Class = iota
	ClassWizard
	ClassArcher
)

// Character is the closed variant over {Warrior, Wizard, Archer}. Each
// variant carries no data beyond its identity and exposes one capability
// method producing its fixed damage kind.
type Character interface {
	Class() Class
	Name() string // display name for diagnostics, e.g. "Warrior"
}

type Warrior struct{}

func (Warrior) Class() Class { return ClassWarrior }
func (Warrior) Name() string { return "Warrior" }

// Smash is the warrior's single capability.
func (Warrior) Smash() Damage { return Physical }

type Wizard struct{}

func (Wizard) Class() Class { return ClassWizard }
func (Wizard) Name() string { return "Wizard" }

// Burn is the wizard's single capability.
func (Wizard) Burn() Damage { return Magical }

type Archer struct{}

func (Archer) Class() Class { return ClassArcher }
func (Archer) Name() string { return "Archer" }

// Shoot is the archer's single capability.
func (Archer) Shoot() Damage { return Ranged }

// IsWarrior reports whether c is the Warrior variant. The classifier
// predicates are mutually exclusive and exhaustive over the closed set of
// variant values; anything else, such as a pointer to a variant, is not
// classified.
func IsWarrior(c Character) bool {
	_, ok := AsWarrior(c)
	return ok
}

// IsWizard reports whether c is the Wizard variant.
func IsWizard(c Character) bool {
	_, ok := AsWizard(c)
	return ok
}

// IsArcher reports whether c is the Archer variant.
func IsArcher(c Character) bool {
	_, ok := AsArcher(c)
	return ok
}

// AsWarrior narrows c to the Warrior variant. The returned value is only
// meaningful when ok is true, so narrowing can never panic on a value the
// classifier would reject.
func AsWarrior(c Character) (Warrior, bool) {
	w, ok := c.(Warrior)
	return w, ok
}

// AsWizard narrows c to the Wizard variant.
func AsWizard(c Character) (Wizard, bool) {
	w, ok := c.(Wizard)
	return w, ok
}

// AsArcher narrows c to the Archer variant.
func AsArcher(c Character) (Archer, bool) {
	a, ok := c.(Archer)
	return a, ok
}
