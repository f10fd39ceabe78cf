package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/sudoku-variant-core/lib"
)

// mockSolver is a hand-written CNFSolver stand-in, used to drive the
// state machine in Drive without a real SAT backend and to count Free
// calls for the release-on-cancel property (§8 scenario 6).
type mockSolver struct {
	numVars    int
	clauses    []lib.Clause
	statuses   []Status
	models     [][]bool
	call       int
	freedCount int
}

func (m *mockSolver) Load(numVars int, clauses []lib.Clause) {
	m.numVars = numVars
	m.clauses = clauses
}

func (m *mockSolver) Solve(time.Duration) Status {
	if m.call >= len(m.statuses) {
		return StatusUnsat
	}
	st := m.statuses[m.call]
	m.call++
	return st
}

func (m *mockSolver) Model() []bool {
	idx := m.call - 1
	if idx < 0 || idx >= len(m.models) {
		return nil
	}
	return m.models[idx]
}

func (m *mockSolver) Free() {
	m.freedCount++
}

func modelFor(n int, digits map[int]int) []bool {
	model := make([]bool, lib.BaseVarCount(n))
	for cellIdx, digit := range digits {
		r, c := cellIdx/n, cellIdx%n
		l := lib.Lit(r, c, digit-1, n)
		model[l-1] = true
	}
	return model
}

func TestDriveReportsSingleSolutionThenCompletionSentinel(t *testing.T) {
	n := 2
	model := modelFor(n, map[int]int{0: 1, 1: 2, 2: 2, 3: 1})
	sv := &mockSolver{statuses: []Status{StatusSat, StatusUnsat}, models: [][]bool{model}}

	var received []Solution
	completed, err := Drive(context.Background(), func() CNFSolver { return sv }, n, lib.BaseVarCount(n)+1, nil, 5, func(s Solution) {
		received = append(received, s)
	})

	require.NoError(t, err)
	assert.True(t, completed)
	require.Len(t, received, 2)
	assert.NotNil(t, received[0])
	assert.Nil(t, received[1])
	assert.Equal(t, 1, sv.freedCount)
}

func TestDriveUnsatReportsOnlyCompletionSentinel(t *testing.T) {
	sv := &mockSolver{statuses: []Status{StatusUnsat}}

	var received []Solution
	completed, err := Drive(context.Background(), func() CNFSolver { return sv }, 2, lib.BaseVarCount(2)+1, nil, 5, func(s Solution) {
		received = append(received, s)
	})

	require.NoError(t, err)
	assert.True(t, completed)
	require.Len(t, received, 1)
	assert.Nil(t, received[0])
}

func TestDriveCancellationSuppressesCompletionSentinelAndReleasesSolver(t *testing.T) {
	n := 2
	model := modelFor(n, map[int]int{0: 1, 1: 2, 2: 2, 3: 1})
	sv := &mockSolver{statuses: []Status{StatusSat, StatusSat}, models: [][]bool{model, model}}

	ctx, cancel := context.WithCancel(context.Background())
	var received []Solution
	// maxSolutions is 1 so the mock, which factory always hands back as
	// the same instance, is freed exactly once: with a higher cap the
	// driver would reload a "fresh" solver mid-loop before observing the
	// cancellation, which on this particular mock means freeing the same
	// object twice (a real factory would hand back distinct instances).
	completed, err := Drive(ctx, func() CNFSolver { return sv }, n, lib.BaseVarCount(n)+1, nil, 1, func(s Solution) {
		received = append(received, s)
		cancel()
	})

	require.NoError(t, err)
	assert.False(t, completed)
	require.Len(t, received, 1, "no callback after the cancel point")
	assert.Equal(t, 1, sv.freedCount, "solver handle must be released even on cancellation")
}

func TestDriveCancellationBeforeEncodingInvokesNoCallback(t *testing.T) {
	sv := &mockSolver{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var received []Solution
	completed, err := Drive(ctx, func() CNFSolver { return sv }, 2, lib.BaseVarCount(2)+1, nil, 5, func(s Solution) {
		received = append(received, s)
	})

	require.NoError(t, err)
	assert.False(t, completed)
	assert.Empty(t, received)
}

func TestDecodeModelRejectsTwoTrueDigitsInSameCell(t *testing.T) {
	n := 2
	model := make([]bool, lib.BaseVarCount(n))
	model[lib.Lit(0, 0, 0, n)-1] = true
	model[lib.Lit(0, 0, 1, n)-1] = true

	_, _, err := decodeModel(model, n)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidModel)
}

