package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildRotors(t *testing.T, names ...string) []Rotor {
	rotors := make([]Rotor, len(names))
	for i, name := range names {
		rotor, err := NewRotor(name)
		assert.Nil(t, err)
		rotors[i] = rotor
	}
	return rotors
}

func offsetsOf(t *testing.T, text string) []Letter {
	letters, err := TextToLetters(text)
	assert.Nil(t, err)
	return letters
}

func TestSingleCarry(t *testing.T) {
	// Rotor III (notch V) rightmost: the first keystroke moves only the fast
	// rotor; over a full revolution the middle rotor advances exactly once.
	rotors := buildRotors(t, "I", "II", "III")
	state := newSteppingState(offsetsOf(t, "AAA"))

	state = step(state, rotors)
	assert.Equal(t, offsetsOf(t, "AAB"), state.offsets)

	for i := 0; i < 25; i++ {
		state = step(state, rotors)
	}
	assert.Equal(t, offsetsOf(t, "ABA"), state.offsets)
	assert.False(t, state.doubleStep)
}

func TestDoubleStepAnomaly(t *testing.T) {
	// Middle rotor II sits on its notch E: two consecutive keystrokes both
	// advance the middle and left rotors.
	rotors := buildRotors(t, "I", "II", "III")
	state := newSteppingState(offsetsOf(t, "AEA"))

	state = step(state, rotors)
	assert.Equal(t, offsetsOf(t, "BFB"), state.offsets)
	assert.True(t, state.doubleStep)

	state = step(state, rotors)
	assert.Equal(t, offsetsOf(t, "CGC"), state.offsets)
	assert.False(t, state.doubleStep)

	// The anomaly is over: the third keystroke moves only the fast rotor.
	state = step(state, rotors)
	assert.Equal(t, offsetsOf(t, "CGD"), state.offsets)
}

func TestRightNotchCarriesMiddle(t *testing.T) {
	// Fast rotor III on its notch V: the next keystroke carries the middle
	// rotor along.
	rotors := buildRotors(t, "I", "II", "III")
	state := newSteppingState(offsetsOf(t, "AAV"))

	state = step(state, rotors)
	assert.Equal(t, offsetsOf(t, "ABW"), state.offsets)
}

func TestFourthWheelNeverSteps(t *testing.T) {
	t.Run("Normal operation", func(t *testing.T) {
		rotors := buildRotors(t, "Beta", "I", "II", "III")
		state := newSteppingState(offsetsOf(t, "AAAA"))

		for i := 0; i < 3*AlphabetSize; i++ {
			state = step(state, rotors)
		}

		assert.Equal(t, Letter(0), state.offsets[0])
	})

	t.Run("Double step drags the second wheel, not the fourth", func(t *testing.T) {
		rotors := buildRotors(t, "Beta", "I", "II", "III")
		state := newSteppingState(offsetsOf(t, "AAEA"))

		state = step(state, rotors)

		assert.Equal(t, offsetsOf(t, "ABFB"), state.offsets)
		assert.True(t, state.doubleStep)
	})
}

func TestStepIsPure(t *testing.T) {
	rotors := buildRotors(t, "I", "II", "III")
	before := newSteppingState(offsetsOf(t, "AEA"))

	_ = step(before, rotors)

	// The input state value is untouched by the transition.
	assert.Equal(t, offsetsOf(t, "AEA"), before.offsets)
	assert.False(t, before.doubleStep)
}
