package lib

// Lit computes the base literal for "cell (r,c) holds digit v+1" in a
// board of side N. Variables are numbered 1..N^3; variable 0 is never
// used so that the negation convention (-x means false) stays
// unambiguous.
func Lit(r, c, v, n int) int {
	return 1 + r*n*n + c*n + v
}

// InverseLit recovers (r, c, v) from a base literal produced by Lit.
// It is only meaningful for literals in [1, n^3].
func InverseLit(lit, n int) (r, c, v int) {
	x := lit - 1
	v = x % n
	x /= n
	c = x % n
	x /= n
	r = x
	return
}

// BaseVarCount returns N^3, the size of the base (non-auxiliary)
// variable range for a board of side N.
func BaseVarCount(n int) int {
	return n * n * n
}
