package machine

import "fmt"

// AlphabetSize is fixed: the machine only ever handled the 26 uppercase
// latin letters.
const AlphabetSize = 26

// Letter is a 0-based alphabet position (A = 0, ..., Z = 25). Everything
// inside the machine works on Letter values, never on raw characters.
type Letter int

// LetterFromRune maps an uppercase latin rune to its alphabet position.
func LetterFromRune(r rune) (Letter, error) {
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("%w: %q is not an uppercase latin letter", ErrValidation, r)
	}
	return Letter(r - 'A'), nil
}

// Rune returns the uppercase latin rune at this alphabet position.
func (l Letter) Rune() rune {
	return rune('A' + l)
}

// TextToLetters converts a pre-normalized text (uppercase latin letters only)
// into alphabet positions. Normalization is the caller's job; any other rune
// is a validation error.
func TextToLetters(text string) ([]Letter, error) {
	letters := make([]Letter, 0, len(text))
	for _, r := range text {
		letter, err := LetterFromRune(r)
		if err != nil {
			return nil, err
		}
		letters = append(letters, letter)
	}
	return letters, nil
}

// LettersToText converts alphabet positions back into an uppercase string.
func LettersToText(letters []Letter) string {
	runes := make([]rune, len(letters))
	for i, letter := range letters {
		runes[i] = letter.Rune()
	}
	return string(runes)
}
