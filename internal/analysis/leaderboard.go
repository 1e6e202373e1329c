package analysis

import "sort"

// ScoredConfiguration is a candidate machine setup (rotor order, reflector,
// starting offsets; rings are not searched) together with the index of
// coincidence of the text it decrypts to. Ordering is by score alone.
type ScoredConfiguration struct {
	Rotors    []string
	Reflector string
	Offsets   string
	Score     float64
}

// leaderboard keeps the best-scoring configurations seen so far, sorted
// ascending by score and bounded by capacity: offers land in sorted position
// and the minimum is evicted on overflow, so memory stays O(capacity) no
// matter how many candidates sweep through.
type leaderboard struct {
	capacity int
	entries  []ScoredConfiguration
}

func newLeaderboard(capacity int) *leaderboard {
	return &leaderboard{
		capacity: capacity,
		entries:  make([]ScoredConfiguration, 0, capacity+1),
	}
}

func (l *leaderboard) Offer(candidate ScoredConfiguration) {
	at := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Score > candidate.Score
	})

	if len(l.entries) == l.capacity {
		if candidate.Score <= l.entries[0].Score {
			return
		}
		// Evict the minimum in place: shift everything below the insertion
		// point down one slot.
		copy(l.entries[:at-1], l.entries[1:at])
		l.entries[at-1] = candidate
		return
	}

	l.entries = append(l.entries, ScoredConfiguration{})
	copy(l.entries[at+1:], l.entries[at:])
	l.entries[at] = candidate
}

// Entries returns the retained configurations, ascending by score.
func (l *leaderboard) Entries() []ScoredConfiguration {
	return l.entries
}
