package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterCodec(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		for r := 'A'; r <= 'Z'; r++ {
			letter, err := LetterFromRune(r)

			assert.Nil(t, err)
			assert.Equal(t, r, letter.Rune())
		}
	})

	t.Run("Rejects non-letters", func(t *testing.T) {
		for _, r := range []rune{'a', '1', ' ', 'É', '@'} {
			_, err := LetterFromRune(r)

			assert.ErrorIs(t, err, ErrValidation)
		}
	})
}

func TestTextToLetters(t *testing.T) {
	t.Run("Valid text", func(t *testing.T) {
		letters, err := TextToLetters("AZBY")

		assert.Nil(t, err)
		assert.Equal(t, []Letter{0, 25, 1, 24}, letters)
		assert.Equal(t, "AZBY", LettersToText(letters))
	})

	t.Run("Unnormalized text", func(t *testing.T) {
		_, err := TextToLetters("HELLO WORLD")

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Empty text", func(t *testing.T) {
		letters, err := TextToLetters("")

		assert.Nil(t, err)
		assert.Empty(t, letters)
	})
}
