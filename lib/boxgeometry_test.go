package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxDimsStandardNine(t *testing.T) {
	bw, bh, ok := BoxDims(9)
	assert.True(t, ok)
	assert.Equal(t, 3, bw)
	assert.Equal(t, 3, bh)
}

func TestBoxDimsSixIsTwoByThree(t *testing.T) {
	bw, bh, ok := BoxDims(6)
	assert.True(t, ok)
	assert.Equal(t, 2, bw)
	assert.Equal(t, 3, bh)
}

func TestBoxDimsPrimeIsRejected(t *testing.T) {
	_, _, ok := BoxDims(7)
	assert.False(t, ok)
}

func TestBoxCellMatchesOriginalThreeByThreeFormula(t *testing.T) {
	n := 9
	bw, bh, ok := BoxDims(n)
	assert.True(t, ok)
	for bx := 0; bx < n; bx++ {
		for pos := 0; pos < n; pos++ {
			row, col := BoxCell(bx, pos, bw, bh, n)
			wantRow := (bx/3)*3 + pos/3
			wantCol := (bx%3)*3 + pos%3
			assert.Equal(t, wantRow, row)
			assert.Equal(t, wantCol, col)
		}
	}
}
