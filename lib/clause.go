package lib

// Clause is a disjunction of CNF literals. A literal is a signed nonzero
// integer: positive x means variable x is true, negative -x means false.
type Clause []int

// ClauseBuffer is the ordered sequence of clauses built up while encoding
// a board. Order of insertion does not affect satisfiability but is kept
// stable for reproducibility, as the distilled spec requires.
type ClauseBuffer struct {
	clauses []Clause
}

// Add appends one clause to the buffer.
func (cb *ClauseBuffer) Add(lits ...int) {
	clause := make(Clause, len(lits))
	copy(clause, lits)
	cb.clauses = append(cb.clauses, clause)
}

// AddClause appends an already-built clause to the buffer.
func (cb *ClauseBuffer) AddClause(c Clause) {
	cb.clauses = append(cb.clauses, c)
}

// Clauses returns the buffered clauses in insertion order.
func (cb *ClauseBuffer) Clauses() []Clause {
	return cb.clauses
}

// Len returns the number of clauses currently buffered.
func (cb *ClauseBuffer) Len() int {
	return len(cb.clauses)
}

// AsInts renders the buffer as the plain [][]int DIMACS-style shape the
// solver adapter's ParseSlice-equivalent expects.
func (cb *ClauseBuffer) AsInts() [][]int {
	out := make([][]int, len(cb.clauses))
	for i, c := range cb.clauses {
		ints := make([]int, len(c))
		copy(ints, c)
		out[i] = ints
	}
	return out
}
