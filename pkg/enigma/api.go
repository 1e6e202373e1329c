// Package enigma is the public surface of the machine simulator and the
// brute-force cryptanalysis. It works on plain strings; the internal packages
// work on alphabet positions.
package enigma

import (
	"context"

	"enigma/internal/analysis"
	"enigma/internal/machine"
)

type (
	Settings            = machine.Settings
	Machine             = machine.Machine
	ScoredConfiguration = analysis.ScoredConfiguration
)

// Re-exported error sentinels, matchable with errors.Is.
var (
	ErrValidation         = machine.ErrValidation
	ErrInvalidState       = machine.ErrInvalidState
	ErrInvalidArgument    = analysis.ErrInvalidArgument
	ErrInvalidSearchSpace = analysis.ErrInvalidSearchSpace
)

// New builds a machine from settings. Empty fields take the historical
// defaults (rotors I II III, reflector B, offsets AAA, rings AAA, no
// plugboard).
func New(settings Settings) (*Machine, error) {
	return machine.NewMachine(settings)
}

// SettingsFromJson reads machine settings from a JSON file.
func SettingsFromJson(file string) (Settings, error) {
	return machine.SettingsFromJson(file)
}

// Encrypt normalizes text (uppercase, accents folded, non-letters dropped)
// and runs it through the machine. The machine's offsets advance per letter.
func Encrypt(m *Machine, text string) (string, error) {
	letters, err := machine.TextToLetters(Normalize(text))
	if err != nil {
		return "", err
	}
	return machine.LettersToText(m.Encrypt(letters)), nil
}

// Decrypt normalizes text and decrypts it. The machine must be at its
// starting offsets; call Reset after encrypting with the same instance.
func Decrypt(m *Machine, text string) (string, error) {
	letters, err := machine.TextToLetters(Normalize(text))
	if err != nil {
		return "", err
	}
	decrypted, err := m.Decrypt(letters)
	if err != nil {
		return "", err
	}
	return machine.LettersToText(decrypted), nil
}

// IndexOfCoincidence scores a normalized-on-the-fly text; see
// analysis.IndexOfCoincidence.
func IndexOfCoincidence(text string) float64 {
	letters, err := machine.TextToLetters(Normalize(text))
	if err != nil {
		return 0
	}
	return analysis.IndexOfCoincidence(letters)
}

// FindBestConfigurations runs the exhaustive rotor-order and offset search
// over the ciphertext and returns the resultCount best configurations,
// descending by index of coincidence. progress may be nil.
func FindBestConfigurations(
	ctx context.Context,
	ciphertext string,
	rotorPool []string,
	reflectorName string,
	resultCount int,
	parallelism int,
	progress func(done, total int),
) ([]ScoredConfiguration, error) {
	letters, err := machine.TextToLetters(Normalize(ciphertext))
	if err != nil {
		return nil, err
	}
	searcher := analysis.NewSearcher(progress)
	return searcher.FindBestConfigurations(ctx, letters, rotorPool, reflectorName, resultCount, parallelism)
}
