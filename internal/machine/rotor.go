package machine

import (
	"fmt"
	"strings"
)

// Historical wiring tables of the rotors used by the German Navy. Beta and
// Gamma are the fixed fourth wheels introduced with the M4.
var rotorWirings = map[string]string{
	"I":     "EKMFLGDQVZNTOWYHXUSPAIBRCJ",
	"II":    "AJDKSIRUXBLHWTMCQGZNPYFVOE",
	"III":   "BDFHJLCPRTXVZNYEIWGAKMUSQO",
	"IV":    "ESOVPZJAYQUIRHXLNFTGKDCMWB",
	"V":     "VZBRGITYUPSDNHLXAWMJQOFECK",
	"VI":    "JPGVOUMFYQBENHZRDKASXLICTW",
	"VII":   "NZJHGRCXMYSWBOUFAIVLPEKQDT",
	"VIII":  "FKQHTLXOCBJSPDZRAMEWNIUYGV",
	"Beta":  "LEYJVCNIXWPBQMDRTAKZGFUHOS",
	"Gamma": "FSOKANUERHMBTIYCWLQPZXVGJD",
}

// Turnover letters per rotor. When a rotor sits on one of these, the wheel to
// its left advances on the next keystroke. Beta and Gamma never step and have
// no notches.
var rotorNotches = map[string]string{
	"I":    "Q",
	"II":   "E",
	"III":  "V",
	"IV":   "J",
	"V":    "Z",
	"VI":   "ZM",
	"VII":  "ZM",
	"VIII": "ZM",
}

// Rotor is an immutable wiring permutation plus its notch set. The inverse
// substitution is derived from the forward permutation on demand so the two
// can never disagree.
type Rotor struct {
	name    string
	forward [AlphabetSize]Letter
	notches [AlphabetSize]bool
}

// NewRotor builds a rotor from its historical name (I..VIII, Beta, Gamma).
func NewRotor(name string) (Rotor, error) {
	canonical := canonicalRotorName(name)
	wiring, ok := rotorWirings[canonical]
	if !ok {
		return Rotor{}, fmt.Errorf("%w: %v is not a valid rotor", ErrValidation, name)
	}

	rotor := Rotor{name: canonical}
	for i, r := range wiring {
		rotor.forward[i] = Letter(r - 'A')
	}
	for _, r := range rotorNotches[canonical] {
		rotor.notches[r-'A'] = true
	}
	return rotor, nil
}

// KnownRotor reports whether name denotes one of the supported rotors.
func KnownRotor(name string) bool {
	_, ok := rotorWirings[canonicalRotorName(name)]
	return ok
}

// Fixed reports whether the rotor is a non-stepping fourth wheel (Beta or
// Gamma). Fixed wheels are only legal as the leftmost rotor of a 4-rotor
// stack.
func (r Rotor) Fixed() bool {
	return r.name == "Beta" || r.name == "Gamma"
}

func (r Rotor) Name() string {
	return r.name
}

// AtNotch reports whether the rotor shows one of its turnover letters at the
// given offset.
func (r Rotor) AtNotch(offset Letter) bool {
	return r.notches[offset]
}

// Forward runs the right-to-left electrical pass: the input contact is
// shifted by the live offset and ring setting, substituted through the
// wiring, and shifted back.
func (r Rotor) Forward(in, offset, ring Letter) Letter {
	contact := (in + offset - ring + AlphabetSize) % AlphabetSize
	return (r.forward[contact] - offset + ring + AlphabetSize) % AlphabetSize
}

// Backward runs the left-to-right pass using the inverse of the forward
// permutation, found by scanning for the contact whose wiring matches.
func (r Rotor) Backward(in, offset, ring Letter) Letter {
	shifted := (in + offset - ring + AlphabetSize) % AlphabetSize
	for contact := Letter(0); contact < AlphabetSize; contact++ {
		if r.forward[contact] == shifted {
			return (contact - offset + ring + AlphabetSize) % AlphabetSize
		}
	}
	// Unreachable: forward is a permutation of 0..25.
	panic(fmt.Sprintf("rotor %v wiring is not a permutation", r.name))
}

func canonicalRotorName(name string) string {
	trimmed := strings.TrimSpace(name)
	if upper := strings.ToUpper(trimmed); rotorNotches[upper] != "" {
		return upper
	}
	switch strings.ToLower(trimmed) {
	case "beta":
		return "Beta"
	case "gamma":
		return "Gamma"
	default:
		return strings.ToUpper(trimmed)
	}
}
