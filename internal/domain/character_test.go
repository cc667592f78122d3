package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifiersAreMutuallyExclusive(t *testing.T) {
	tests := []struct {
		character Character
		isWarrior bool
		isWizard  bool
		isArcher  bool
	}{
		{Warrior{}, true, false, false},
		{Wizard{}, false, true, false},
		{Archer{}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.character.Name(), func(t *testing.T) {
			assert.Equal(t, tt.isWarrior, IsWarrior(tt.character))
			assert.Equal(t, tt.isWizard, IsWizard(tt.character))
			assert.Equal(t, tt.isArcher, IsArcher(tt.character))
		})
	}
}

func TestClassifiersRejectPointerToVariant(t *testing.T) {
	assert.False(t, IsWarrior(&Warrior{}))
	assert.False(t, IsWizard(&Wizard{}))
	assert.False(t, IsArcher(&Archer{}))
}

func TestNarrowing(t *testing.T) {
	w, ok := AsWarrior(Warrior{})
	assert.True(t, ok)
	assert.Equal(t, Physical, w.Smash())

	_, ok = AsWarrior(Wizard{})
	assert.False(t, ok)
	_, ok = AsWizard(Archer{})
	assert.False(t, ok)
	_, ok = AsArcher(Warrior{})
	assert.False(t, ok)
}

func TestCapabilitiesMatchDamageKinds(t *testing.T) {
	assert.Equal(t, Physical, Warrior{}.Smash())
	assert.Equal(t, Magical, Wizard{}.Burn())
	assert.Equal(t, Ranged, Archer{}.Shoot())
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Warrior", Warrior{}.Name())
	assert.Equal(t, "Wizard", Wizard{}.Name())
	assert.Equal(t, "Archer", Archer{}.Name())
}

func TestDamageString(t *testing.T) {
	assert.Equal(t, "physical", Physical.String())
	assert.Equal(t, "magical", Magical.String())
	assert.Equal(t, "ranged", Ranged.String())
	assert.Equal(t, "unknown", Damage(99).String())
}
