package pbencode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eftil/sudoku-variant-core/lib"
)

func TestEncodeBothExactlyOne(t *testing.T) {
	lits := []int{1, 2, 3}
	weights := []int{1, 1, 1}
	cb := &lib.ClauseBuffer{}
	nextVar := EncodeBoth(weights, lits, 1, 1, cb, 4)
	auxCount := nextVar - 4

	for bits := 0; bits < 8; bits++ {
		assign := map[int]bool{1: bits&1 != 0, 2: bits&2 != 0, 3: bits&4 != 0}
		sum := 0
		for _, v := range assign {
			if v {
				sum++
			}
		}
		sat := existsSatisfyingAux(cb.Clauses(), assign, 4, auxCount)
		assert.Equal(t, sum == 1, sat, "bits=%d sum=%d", bits, sum)
	}
}

func TestEncodeBothWeightedBounds(t *testing.T) {
	lits := []int{1, 2, 3}
	weights := []int{1, 2, 3}
	cb := &lib.ClauseBuffer{}
	nextVar := EncodeBoth(weights, lits, 2, 4, cb, 4)
	auxCount := nextVar - 4

	for bits := 0; bits < 8; bits++ {
		assign := map[int]bool{1: bits&1 != 0, 2: bits&2 != 0, 3: bits&4 != 0}
		sum := 0
		for i, w := range weights {
			if assign[lits[i]] {
				sum += w
			}
		}
		want := sum >= 2 && sum <= 4
		sat := existsSatisfyingAux(cb.Clauses(), assign, 4, auxCount)
		assert.Equal(t, want, sat, "bits=%d sum=%d", bits, sum)
	}
}

func TestEncodeBothZeroHiForbidsAllPositiveWeights(t *testing.T) {
	lits := []int{1, 2}
	weights := []int{1, 1}
	cb := &lib.ClauseBuffer{}
	nextVar := EncodeBoth(weights, lits, 0, 0, cb, 3)
	assert.Equal(t, 3, nextVar, "no aux vars needed when hi == 0")
	assert.True(t, satisfiesAll(cb.Clauses(), map[int]bool{1: false, 2: false}))
	assert.False(t, satisfiesAll(cb.Clauses(), map[int]bool{1: true, 2: false}))
}

func TestEncodeBothLoExceedsHiForcesUnsat(t *testing.T) {
	lits := []int{1, 2}
	weights := []int{1, 1}
	cb := &lib.ClauseBuffer{}
	nextVar := EncodeBoth(weights, lits, 3, 1, cb, 3)
	auxCount := nextVar - 3

	for bits := 0; bits < 4; bits++ {
		assign := map[int]bool{1: bits&1 != 0, 2: bits&2 != 0}
		assert.False(t, existsSatisfyingAux(cb.Clauses(), assign, 3, auxCount), "bits=%d", bits)
	}
}

// existsSatisfyingAux brute-forces every assignment of the aux variables
// [auxStart, auxStart+auxCount) and reports whether some combination
// satisfies every clause under the fixed base assignment.
func existsSatisfyingAux(clauses []lib.Clause, base map[int]bool, auxStart, auxCount int) bool {
	total := 1 << uint(auxCount)
	for combo := 0; combo < total; combo++ {
		assign := make(map[int]bool, len(base)+auxCount)
		for k, v := range base {
			assign[k] = v
		}
		for i := 0; i < auxCount; i++ {
			assign[auxStart+i] = combo&(1<<uint(i)) != 0
		}
		if satisfiesAll(clauses, assign) {
			return true
		}
	}
	return false
}

func satisfiesAll(clauses []lib.Clause, assign map[int]bool) bool {
	for _, c := range clauses {
		ok := false
		for _, l := range c {
			v := l
			neg := false
			if v < 0 {
				v = -v
				neg = true
			}
			val := assign[v]
			if neg {
				val = !val
			}
			if val {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
