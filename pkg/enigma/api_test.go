package enigma

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Hello, World!", "HELLOWORLD"},
		{"Héllo, Wörld!", "HELLOWORLD"},
		{"Funkschlüssel M3", "FUNKSCHLUSSELM"},
		{"attack at 06:00", "ATTACKAT"},
		{"  ", ""},
		{"ÀÁÂÃÄ çñ é", "AAAAACNE"},
	}

	for _, testCase := range cases {
		assert.Equal(t, testCase.expected, Normalize(testCase.input), "input %q", testCase.input)
	}
}

func TestEncryptDecryptStrings(t *testing.T) {
	t.Run("Round trip with raw text", func(t *testing.T) {
		// Arrange
		machine, err := New(Settings{
			Rotors:    []string{"Gamma", "V", "II", "III"},
			Reflector: "B-thin",
			Offsets:   "GKDT",
			Rings:     "HAAA",
			Plugboard: "bq cr di ej kw mt os px uz gh",
		})
		assert.Nil(t, err)

		// Act
		ciphertext, err := Encrypt(machine, "By 1930, the Reichswehr had suggested that the Navy adopt their machine.")
		assert.Nil(t, err)
		machine.Reset()
		decrypted, err := Decrypt(machine, ciphertext)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Normalize("By 1930, the Reichswehr had suggested that the Navy adopt their machine."), decrypted)
	})

	t.Run("Decrypt guards drifted offsets", func(t *testing.T) {
		machine, err := New(Settings{})
		assert.Nil(t, err)

		ciphertext, err := Encrypt(machine, "HELLOWORLD")
		assert.Nil(t, err)

		_, err = Decrypt(machine, ciphertext)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestIndexOfCoincidenceString(t *testing.T) {
	assert.Equal(t, 0.0, IndexOfCoincidence(""))
	assert.Equal(t, 0.0, IndexOfCoincidence("a!"))
	assert.InDelta(t, 1.0/3.0, IndexOfCoincidence("a a b b"), 1e-12)
}

func TestFindBestConfigurationsFacade(t *testing.T) {
	t.Run("Rejects impossible parameters", func(t *testing.T) {
		_, err := FindBestConfigurations(context.Background(), "QMJIDOMZWZJFJR", []string{"I", "II"}, "B", 5, 1, nil)

		assert.True(t, errors.Is(err, ErrInvalidSearchSpace))
	})

	t.Run("Recovers a configuration from normalized ciphertext", func(t *testing.T) {
		machine, err := New(Settings{Rotors: []string{"III", "I", "II"}, Offsets: "KFD"})
		assert.Nil(t, err)
		ciphertext, err := Encrypt(machine, "the quick brown fox jumps over the lazy dog again and again and again")
		assert.Nil(t, err)

		best, err := FindBestConfigurations(context.Background(), ciphertext, []string{"I", "II", "III"}, "B", 2, 2, nil)

		assert.Nil(t, err)
		assert.Len(t, best, 2)
		assert.GreaterOrEqual(t, best[0].Score, best[1].Score)
	})
}
