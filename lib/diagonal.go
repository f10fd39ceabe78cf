package lib

// LittleKillerDiagonal resolves an opaque little-killer diagonal index to
// its ordered sequence of (row, col) cells on a board of side n.
//
// Diagonals come in two families of 2n-1 members each: "falling"
// diagonals, where row-col is constant, and "rising" diagonals, where
// row+col is constant. diagIdx in [0, 2n-1) selects a falling diagonal
// with row-col == diagIdx-(n-1); diagIdx in [2n-1, 2*(2n-1)) selects a
// rising diagonal with row+col == diagIdx-(2n-1). Cells are returned in
// increasing-row order, which is also bulb-to-tip order for a little
// killer arrow entering from the top edge or a top corner.
func LittleKillerDiagonal(diagIdx, n int) [][2]int {
	span := 2*n - 1
	var cells [][2]int
	if diagIdx < 0 || diagIdx >= 2*span {
		return cells
	}
	if diagIdx < span {
		k := diagIdx - (n - 1)
		for row := 0; row < n; row++ {
			col := row - k
			if col >= 0 && col < n {
				cells = append(cells, [2]int{row, col})
			}
		}
		return cells
	}
	k := diagIdx - span
	for row := 0; row < n; row++ {
		col := k - row
		if col >= 0 && col < n {
			cells = append(cells, [2]int{row, col})
		}
	}
	return cells
}
