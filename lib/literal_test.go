package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLitInverseLitBijection(t *testing.T) {
	n := 9
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 0; v < n; v++ {
				l := Lit(r, c, v, n)
				gotR, gotC, gotV := InverseLit(l, n)
				assert.Equal(t, r, gotR)
				assert.Equal(t, c, gotC)
				assert.Equal(t, v, gotV)
			}
		}
	}
}

func TestLitRangeAndZeroReservation(t *testing.T) {
	n := 9
	assert.Equal(t, 1, Lit(0, 0, 0, n))
	assert.Equal(t, n*n*n, Lit(n-1, n-1, n-1, n))
	assert.Equal(t, n*n*n, BaseVarCount(n))
}
