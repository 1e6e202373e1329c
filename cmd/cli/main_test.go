package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupOutput(t *testing.T) {
	assert.Equal(t, "ABCDE", groupOutput("ABCDE", 5, 6))
	assert.Equal(t, "ABCDE  FGH", groupOutput("ABCDEFGH", 5, 6))
	assert.Equal(t, "ABCD  EFGH\nIJKL", groupOutput("ABCDEFGHIJKL", 4, 2))
	assert.Equal(t, "AB  CD\nEF  GH\nIJ", groupOutput("ABCDEFGHIJ", 2, 2))
	assert.Equal(t, "ABCDEFGH", groupOutput("ABCDEFGH", 0, 2))
	assert.Equal(t, "", groupOutput("", 5, 6))
}
