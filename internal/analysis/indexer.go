package analysis

import "enigma/internal/machine"

// Indexer gives a unique flat index to a combination of rotor offsets and
// vice versa, so an offset sweep is a single counted loop instead of nested
// ones.
type Indexer interface {
	// Returns the flat index of an offset vector (leftmost rotor first)
	Index(offsets []machine.Letter) int
	// Returns the offset vector denoted by a flat index
	Offsets(index int) []machine.Letter
	// Returns the size of the sweep space
	Size() int
}

func NewIndexer(wheels int) Indexer {
	size := 1
	for i := 0; i < wheels; i++ {
		size *= machine.AlphabetSize
	}
	return &offsetIndexer{wheels: wheels, size: size}
}

type offsetIndexer struct {
	wheels int
	size   int
}

func (i *offsetIndexer) Index(offsets []machine.Letter) int {
	index := 0
	for _, offset := range offsets {
		index = index*machine.AlphabetSize + int(offset)
	}
	return index
}

func (i *offsetIndexer) Offsets(index int) []machine.Letter {
	offsets := make([]machine.Letter, i.wheels)
	for wheel := i.wheels - 1; wheel >= 0; wheel-- {
		offsets[wheel] = machine.Letter(index % machine.AlphabetSize)
		index = index / machine.AlphabetSize
	}
	return offsets
}

func (i *offsetIndexer) Size() int {
	return i.size
}
