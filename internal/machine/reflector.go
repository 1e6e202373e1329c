package machine

import (
	"fmt"
	"strings"
)

// Historical reflector wirings. The thin variants fit the M4 housing
// alongside the fourth wheel and are only legal with a 4-rotor stack.
var reflectorWirings = map[string]string{
	"A":      "EJMZALYXVBWFCRQUONTSPIKHGD",
	"B":      "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C":      "FVPJIAOYEDRZXWGCTKUQSBNMHL",
	"B-thin": "ENKQAUYWJICOPBLMDXZVFTHRGS",
	"C-thin": "RDOBJNTKVEHMLFCWZAXGYIPSUQ",
}

// Reflector is an immutable involutive permutation without fixed points: it
// sends the signal back through the rotor stack on a different wire.
type Reflector struct {
	name    string
	mapping [AlphabetSize]Letter
}

// NewReflector builds a reflector from its name (A, B, C, B-thin, C-thin).
func NewReflector(name string) (Reflector, error) {
	canonical := canonicalReflectorName(name)
	wiring, ok := reflectorWirings[canonical]
	if !ok {
		return Reflector{}, fmt.Errorf("%w: %v is not a valid reflector", ErrValidation, name)
	}

	reflector := Reflector{name: canonical}
	for i, r := range wiring {
		reflector.mapping[i] = Letter(r - 'A')
	}
	return reflector, nil
}

// KnownReflector reports whether name denotes one of the supported
// reflectors.
func KnownReflector(name string) bool {
	_, ok := reflectorWirings[canonicalReflectorName(name)]
	return ok
}

func (r Reflector) Name() string {
	return r.name
}

// Thin reports whether this is one of the M4 thin reflectors.
func (r Reflector) Thin() bool {
	return strings.HasSuffix(r.name, "-thin")
}

// Reflect applies the involutive substitution.
func (r Reflector) Reflect(in Letter) Letter {
	return r.mapping[in]
}

func canonicalReflectorName(name string) string {
	trimmed := strings.TrimSpace(name)
	// Accept "b_thin"/"B thin" spellings alongside the canonical "B-thin".
	trimmed = strings.NewReplacer("_", "-", " ", "-").Replace(trimmed)
	if len(trimmed) == 0 {
		return trimmed
	}
	head := strings.ToUpper(trimmed[:1])
	if len(trimmed) == 1 {
		return head
	}
	return head + strings.ToLower(trimmed[1:])
}
