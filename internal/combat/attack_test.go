package combat_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"combat-sim/internal/combat"
	"combat-sim/internal/domain"
)

func TestAttackEmptyArmy(t *testing.T) {
	got := combat.Attack(nil)
	if diff := cmp.Diff(combat.TotalDamage{}, got); diff != "" {
		t.Errorf("Attack(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestAttackMixedArmy(t *testing.T) {
	army := []domain.Character{
		domain.Warrior{},
		domain.Wizard{},
		domain.Archer{},
		domain.Warrior{},
	}

	got := combat.Attack(army)
	want := combat.TotalDamage{Physical: 2, Magical: 1, Ranged: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Attack mismatch (-want +got):\n%s", diff)
	}
}

func TestAttackCountsSumToArmySize(t *testing.T) {
	variants := []domain.Character{domain.Warrior{}, domain.Wizard{}, domain.Archer{}}
	rng := rand.New(rand.NewPCG(1, 2))

	for _, size := range []int{0, 1, 7, 100} {
		army := make([]domain.Character, size)
		for i := range army {
			army[i] = variants[rng.IntN(len(variants))]
		}
		assert.Equal(t, size, combat.Attack(army).Sum(), "army size %d", size)
	}
}

func TestAttackIsOrderIndependent(t *testing.T) {
	army := []domain.Character{
		domain.Archer{},
		domain.Warrior{},
		domain.Wizard{},
		domain.Wizard{},
		domain.Warrior{},
	}
	want := combat.Attack(army)

	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.Character, len(army))
		copy(shuffled, army)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, combat.Attack(shuffled))
	}
}
