package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflectorInvolution(t *testing.T) {
	// Every reflector must be an involution without fixed points: the signal
	// always comes back on a different wire.
	for _, name := range []string{"A", "B", "C", "B-thin", "C-thin"} {
		reflector, err := NewReflector(name)
		assert.Nil(t, err)

		for in := Letter(0); in < AlphabetSize; in++ {
			out := reflector.Reflect(in)

			assert.NotEqual(t, in, out, "reflector %v has a fixed point at %v", name, in)
			assert.Equal(t, in, reflector.Reflect(out), "reflector %v is not involutive at %v", name, in)
		}
	}
}

func TestNewReflector(t *testing.T) {
	t.Run("Thin variants", func(t *testing.T) {
		for name, thin := range map[string]bool{"A": false, "B": false, "C": false, "B-thin": true, "C-thin": true} {
			reflector, err := NewReflector(name)

			assert.Nil(t, err)
			assert.Equal(t, thin, reflector.Thin())
		}
	})

	t.Run("Name spellings", func(t *testing.T) {
		for _, spelling := range []string{"b-thin", "B_thin", "B THIN"} {
			reflector, err := NewReflector(spelling)

			assert.Nil(t, err)
			assert.Equal(t, "B-thin", reflector.Name())
		}
	})

	t.Run("Unknown reflector", func(t *testing.T) {
		_, err := NewReflector("D")

		assert.ErrorIs(t, err, ErrValidation)
		assert.False(t, KnownReflector("D"))
	})
}
