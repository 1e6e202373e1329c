package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"enigma/internal/machine"
)

func TestIndexer(t *testing.T) {
	indexer := NewIndexer(3)

	t.Run("Size covers the full sweep", func(t *testing.T) {
		assert.Equal(t, 26*26*26, indexer.Size())
	})

	t.Run("Endpoints", func(t *testing.T) {
		assert.Equal(t, []machine.Letter{0, 0, 0}, indexer.Offsets(0))
		assert.Equal(t, []machine.Letter{0, 0, 1}, indexer.Offsets(1))
		assert.Equal(t, []machine.Letter{25, 25, 25}, indexer.Offsets(indexer.Size()-1))
	})

	t.Run("Round trip", func(t *testing.T) {
		for _, index := range []int{0, 1, 25, 26, 675, 676, 9999, 17575} {
			assert.Equal(t, index, indexer.Index(indexer.Offsets(index)))
		}
	})
}
