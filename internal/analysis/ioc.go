package analysis

import "enigma/internal/machine"

// IndexOfCoincidence computes the probability that two letters drawn from the
// text at distinct positions coincide. Random text approaches 1/26 (~0.0385),
// genuine English sits around 0.067, so higher values flag more plausible
// plaintext. Texts shorter than two letters score 0.
func IndexOfCoincidence(text []machine.Letter) float64 {
	length := len(text)
	if length < 2 {
		return 0
	}

	var counts [machine.AlphabetSize]int
	for _, letter := range text {
		counts[letter]++
	}

	coincidences := 0
	for _, count := range counts {
		coincidences += count * (count - 1) / 2
	}

	return float64(coincidences) / float64(length*(length-1)/2)
}
