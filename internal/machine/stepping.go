package machine

import "slices"

// steppingState is the only mutable part of a machine: the live offset of
// every rotor plus the pending double-step flag. It is transitioned as a
// value so the mechanics can be tested apart from the substitution circuit.
type steppingState struct {
	offsets    []Letter
	doubleStep bool
}

func newSteppingState(offsets []Letter) steppingState {
	return steppingState{offsets: slices.Clone(offsets)}
}

// step fires the keystroke transition once, strictly before the circuit
// closes. The rightmost rotor always advances. The second-from-right wheel
// advances when its right neighbor sat on a notch, or when it sits on its own
// notch; in the latter case it drags the third-from-right wheel along and the
// pending flag forces both to advance again on the very next keystroke (the
// double-step quirk of the physical stepping levers). The leftmost wheel of a
// 4-rotor stack never advances.
func step(state steppingState, rotors []Rotor) steppingState {
	right := len(rotors) - 1
	middle := len(rotors) - 2
	left := len(rotors) - 3

	next := newSteppingState(state.offsets)

	advanceMiddle := state.doubleStep
	advanceLeft := state.doubleStep
	if rotors[middle].AtNotch(state.offsets[middle]) {
		advanceMiddle = true
		advanceLeft = true
		next.doubleStep = true
	}
	if rotors[right].AtNotch(state.offsets[right]) {
		advanceMiddle = true
	}

	next.offsets[right] = (next.offsets[right] + 1) % AlphabetSize
	if advanceMiddle {
		next.offsets[middle] = (next.offsets[middle] + 1) % AlphabetSize
	}
	if advanceLeft {
		next.offsets[left] = (next.offsets[left] + 1) % AlphabetSize
	}

	return next
}
