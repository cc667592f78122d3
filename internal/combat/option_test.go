package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combat-sim/internal/combat"
	"combat-sim/internal/domain"
	"combat-sim/internal/maybe"
)

func TestOptionsAgreeWithValidators(t *testing.T) {
	options := map[string]struct {
		option    func(domain.Character) maybe.Maybe[domain.Damage]
		validator func(domain.Character) combat.Outcome
	}{
		"smash": {combat.SmashOption, combat.Smash},
		"burn":  {combat.BurnOption, combat.Burn},
		"shoot": {combat.ShootOption, combat.Shoot},
	}
	all := []domain.Character{domain.Warrior{}, domain.Wizard{}, domain.Archer{}}

	for action, tc := range options {
		for _, c := range all {
			t.Run(action+"/"+c.Name(), func(t *testing.T) {
				got := tc.option(c)
				want := tc.validator(c)

				assert.Equal(t, want.IsOk(), got.IsSome(), "present iff the validator succeeds")
				if want.IsOk() {
					wantDamage, _ := want.Value()
					gotDamage, ok := got.Get()
					require.True(t, ok)
					assert.Equal(t, wantDamage, gotDamage)
				}
			})
		}
	}
}
