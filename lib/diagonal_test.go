package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLittleKillerDiagonalFallingFamily(t *testing.T) {
	n := 9
	// diagIdx = n-1 selects k = 0 (the main falling diagonal).
	cells := LittleKillerDiagonal(n-1, n)
	assert.Len(t, cells, n)
	for i, rc := range cells {
		assert.Equal(t, [2]int{i, i}, rc)
	}
}

func TestLittleKillerDiagonalRisingFamily(t *testing.T) {
	n := 9
	span := 2*n - 1
	// diagIdx = span + (n-1) selects the rising diagonal row+col == n-1,
	// the anti-diagonal.
	cells := LittleKillerDiagonal(span+(n-1), n)
	assert.Len(t, cells, n)
	for _, rc := range cells {
		assert.Equal(t, n-1, rc[0]+rc[1])
	}
}

func TestLittleKillerDiagonalOutOfRange(t *testing.T) {
	assert.Empty(t, LittleKillerDiagonal(-1, 9))
	assert.Empty(t, LittleKillerDiagonal(1000, 9))
}
