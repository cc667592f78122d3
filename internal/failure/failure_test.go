package failure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilder(t *testing.T) {
	invalid := NewBuilder(InvalidTarget)
	f := invalid("Wizard cannot perform smash")

	assert.Equal(t, InvalidTarget, f.Kind())
	assert.Equal(t, "Wizard cannot perform smash", f.Message())
}

func TestFailureIsError(t *testing.T) {
	var err error = NewBuilder(NoTarget)("No unit currently selected")
	assert.EqualError(t, err, "No unit currently selected")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "no_target", NoTarget.String())
	assert.Equal(t, "invalid_target", InvalidTarget.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
