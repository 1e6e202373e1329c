package machine

import (
	"fmt"
	"sort"
	"strings"
)

// MaxPlugboardPairs is the number of cables that shipped with the machine.
const MaxPlugboardPairs = 10

// Plugboard is a user-configured involutive substitution built from disjoint
// letter pairs. Letters without a cable map to themselves.
type Plugboard struct {
	mapping [AlphabetSize]Letter
}

// NewPlugboard parses a space-separated list of two-letter pairs, e.g.
// "AB CD EF". An empty spec yields the identity plugboard. At most ten pairs
// are allowed and no letter may appear twice.
func NewPlugboard(spec string) (Plugboard, error) {
	var plugboard Plugboard
	for i := range plugboard.mapping {
		plugboard.mapping[i] = Letter(i)
	}

	pairs := strings.Fields(strings.ToUpper(spec))
	if len(pairs) > MaxPlugboardPairs {
		return Plugboard{}, fmt.Errorf("%w: plugboard has %v pairs, at most %v are allowed", ErrValidation, len(pairs), MaxPlugboardPairs)
	}

	var used [AlphabetSize]bool
	for _, pair := range pairs {
		if len(pair) != 2 {
			return Plugboard{}, fmt.Errorf("%w: bad plugboard pair %q", ErrValidation, pair)
		}
		first, err := LetterFromRune(rune(pair[0]))
		if err != nil {
			return Plugboard{}, fmt.Errorf("%w: bad plugboard pair %q", ErrValidation, pair)
		}
		second, err := LetterFromRune(rune(pair[1]))
		if err != nil {
			return Plugboard{}, fmt.Errorf("%w: bad plugboard pair %q", ErrValidation, pair)
		}
		if first == second || used[first] || used[second] {
			return Plugboard{}, fmt.Errorf("%w: plugboard maps letter twice in %q", ErrValidation, pair)
		}
		used[first], used[second] = true, true
		plugboard.mapping[first] = second
		plugboard.mapping[second] = first
	}

	return plugboard, nil
}

// Substitute applies the plugboard substitution.
func (p Plugboard) Substitute(in Letter) Letter {
	return p.mapping[in]
}

// Pairs returns the configured cables as sorted two-letter strings.
func (p Plugboard) Pairs() []string {
	pairs := make([]string, 0, MaxPlugboardPairs)
	for from := Letter(0); from < AlphabetSize; from++ {
		to := p.mapping[from]
		if to > from {
			pairs = append(pairs, string([]rune{from.Rune(), to.Rune()}))
		}
	}
	sort.Strings(pairs)
	return pairs
}
