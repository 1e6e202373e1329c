package machine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Settings is the full description of a machine: rotor names left to right,
// reflector name, per-rotor starting offsets and ring settings, and the
// plugboard cable spec. Empty fields take the historical defaults (I II III,
// reflector B, offsets AAA, rings AAA, no plugboard).
type Settings struct {
	Plugboard string   `mapstructure:"plugboard"`
	Rotors    []string `mapstructure:"rotors"`
	Reflector string   `mapstructure:"reflector"`
	Offsets   string   `mapstructure:"offsets"`
	Rings     string   `mapstructure:"rings"`
}

func (s Settings) withDefaults() Settings {
	if len(s.Rotors) == 0 {
		s.Rotors = []string{"I", "II", "III"}
	}
	if s.Reflector == "" {
		s.Reflector = "B"
	}
	if s.Offsets == "" {
		s.Offsets = strings.Repeat("A", len(s.Rotors))
	}
	if s.Rings == "" {
		s.Rings = strings.Repeat("A", len(s.Rotors))
	}
	return s
}

// Machine simulates an Enigma M3 (three rotors) or M4 Shark (four rotors,
// fixed Beta/Gamma wheel, thin reflector). The same instance both encrypts
// and decrypts because the circuit is self-inverse, provided the offsets are
// back at their starting snapshot.
type Machine struct {
	rotors    []Rotor
	reflector Reflector
	plugboard Plugboard
	rings     []Letter

	state steppingState
	start []Letter

	settings Settings
}

// NewMachine validates the settings eagerly and builds the machine. Once
// construction succeeds, Encrypt cannot fail on any letter.
func NewMachine(settings Settings) (*Machine, error) {
	settings = settings.withDefaults()

	rotors, reflector, plugboard, offsets, rings, err := buildParts(settings)
	if err != nil {
		return nil, err
	}

	return &Machine{
		rotors:    rotors,
		reflector: reflector,
		plugboard: plugboard,
		rings:     rings,
		state:     newSteppingState(offsets),
		start:     offsets,
		settings:  settings,
	}, nil
}

func buildParts(settings Settings) (rotors []Rotor, reflector Reflector, plugboard Plugboard, offsets, rings []Letter, err error) {
	if len(settings.Rotors) != 3 && len(settings.Rotors) != 4 {
		err = fmt.Errorf("%w: machine takes 3 or 4 rotors, got %v", ErrValidation, len(settings.Rotors))
		return
	}

	rotors = make([]Rotor, len(settings.Rotors))
	for i, name := range settings.Rotors {
		rotors[i], err = NewRotor(name)
		if err != nil {
			return
		}
	}

	//** Fixed wheels are only legal as the leftmost rotor of an M4 stack
	for i, rotor := range rotors {
		if rotor.Fixed() && !(len(rotors) == 4 && i == 0) {
			err = fmt.Errorf("%w: rotor %v is only valid as the leftmost wheel of a 4-rotor machine", ErrValidation, rotor.Name())
			return
		}
	}

	reflector, err = NewReflector(settings.Reflector)
	if err != nil {
		return
	}

	//** M4 pairs a fixed fourth wheel with a thin reflector, M3 with a full one
	if len(rotors) == 4 {
		if !rotors[0].Fixed() {
			err = fmt.Errorf("%w: a 4-rotor machine needs Beta or Gamma as its leftmost wheel", ErrValidation)
			return
		}
		if !reflector.Thin() {
			err = fmt.Errorf("%w: a 4-rotor machine needs a thin reflector, got %v", ErrValidation, reflector.Name())
			return
		}
	} else if reflector.Thin() {
		err = fmt.Errorf("%w: thin reflector %v needs a 4-rotor machine", ErrValidation, reflector.Name())
		return
	}

	offsets, err = letterVector(settings.Offsets, len(rotors), "offsets")
	if err != nil {
		return
	}
	rings, err = letterVector(settings.Rings, len(rotors), "rings")
	if err != nil {
		return
	}

	plugboard, err = NewPlugboard(settings.Plugboard)
	return
}

func letterVector(text string, size int, field string) ([]Letter, error) {
	letters, err := TextToLetters(strings.ToUpper(strings.TrimSpace(text)))
	if err != nil {
		return nil, fmt.Errorf("%w: bad %v %q", ErrValidation, field, text)
	}
	if len(letters) != size {
		return nil, fmt.Errorf("%w: %v %q must have one letter per rotor (%v)", ErrValidation, field, text, size)
	}
	return letters, nil
}

// Encrypt processes the text letter by letter: step the rotors, plugboard,
// forward pass right to left, reflector, backward pass left to right,
// plugboard again. The live offsets mutate on every letter, exactly like the
// physical machine where a keypress steps the rotors before the circuit
// closes.
func (m *Machine) Encrypt(text []Letter) []Letter {
	encrypted := make([]Letter, len(text))
	for i, letter := range text {
		m.state = step(m.state, m.rotors)

		letter = m.plugboard.Substitute(letter)
		for j := len(m.rotors) - 1; j >= 0; j-- {
			letter = m.rotors[j].Forward(letter, m.state.offsets[j], m.rings[j])
		}
		letter = m.reflector.Reflect(letter)
		for j := 0; j < len(m.rotors); j++ {
			letter = m.rotors[j].Backward(letter, m.state.offsets[j], m.rings[j])
		}
		encrypted[i] = m.plugboard.Substitute(letter)
	}
	return encrypted
}

// Decrypt runs the same circuit as Encrypt but guards against offset drift:
// decrypting with offsets that moved past the starting snapshot would
// silently produce garbage, so the caller must Reset first.
func (m *Machine) Decrypt(text []Letter) ([]Letter, error) {
	if !slices.Equal(m.state.offsets, m.start) {
		return nil, fmt.Errorf("%w: call Reset before decrypting", ErrInvalidState)
	}
	return m.Encrypt(text), nil
}

// Reset restores the offsets to the starting snapshot. Rings, reflector and
// plugboard are untouched.
func (m *Machine) Reset() {
	m.state = newSteppingState(m.start)
}

// Set reconfigures a subset of the settings without rebuilding the machine by
// hand: zero-valued fields keep their current value. The merged settings are
// re-validated as a whole and the offset snapshot is taken again.
func (m *Machine) Set(changes Settings) error {
	merged := m.settings
	if changes.Plugboard != "" {
		merged.Plugboard = changes.Plugboard
	}
	if len(changes.Rotors) != 0 {
		merged.Rotors = changes.Rotors
		// A new stack invalidates old offset/ring strings unless overridden.
		if changes.Offsets == "" {
			merged.Offsets = strings.Repeat("A", len(changes.Rotors))
		}
		if changes.Rings == "" {
			merged.Rings = strings.Repeat("A", len(changes.Rotors))
		}
	}
	if changes.Reflector != "" {
		merged.Reflector = changes.Reflector
	}
	if changes.Offsets != "" {
		merged.Offsets = strings.ToUpper(changes.Offsets)
	}
	if changes.Rings != "" {
		merged.Rings = strings.ToUpper(changes.Rings)
	}

	rotors, reflector, plugboard, offsets, rings, err := buildParts(merged)
	if err != nil {
		return err
	}

	m.rotors = rotors
	m.reflector = reflector
	m.plugboard = plugboard
	m.rings = rings
	m.state = newSteppingState(offsets)
	m.start = offsets
	m.settings = merged
	return nil
}

// Offsets returns the current live offsets, leftmost rotor first.
func (m *Machine) Offsets() []Letter {
	return slices.Clone(m.state.offsets)
}

// Settings returns the normalized settings the machine was built from.
func (m *Machine) Settings() Settings {
	settings := m.settings
	settings.Rotors = append([]string(nil), m.settings.Rotors...)
	return settings
}

func (m *Machine) String() string {
	mode := "M3"
	if len(m.rotors) == 4 {
		mode = "M4 Shark"
	}
	plug := strings.Join(m.plugboard.Pairs(), " ")
	if plug == "" {
		plug = "None"
	}
	names := lo.Map(m.rotors, func(rotor Rotor, _ int) string { return rotor.Name() })

	var builder strings.Builder
	fmt.Fprintf(&builder, "Enigma %v\n", mode)
	fmt.Fprintf(&builder, " - Rotors (left -> right): %v\n", strings.Join(names, ", "))
	fmt.Fprintf(&builder, " - Reflector: %v\n", m.reflector.Name())
	fmt.Fprintf(&builder, " - Initial Rotor Settings: %v\n", LettersToText(m.start))
	fmt.Fprintf(&builder, " - Plugboard: %v\n", plug)
	fmt.Fprintf(&builder, " - Ring Configuration: %v\n", LettersToText(m.rings))
	return builder.String()
}
