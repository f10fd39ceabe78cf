package warnings

import "github.com/eftil/sudoku-variant-core/lib"

// evalPalindrome splits the line into a first half and a reversed second
// half and flags any position pair whose filled digits differ.
func evalPalindrome(line []int, digits *lib.DigitMap, b *Bitset) {
	m := len(line)
	for i := 0; i < m/2; i++ {
		a, c := line[i], line[m-1-i]
		da, dc := digits.GetIndex(a), digits.GetIndex(c)
		if da == 0 || dc == 0 {
			continue
		}
		if da != dc {
			b.flag(a)
			b.flag(c)
		}
	}
}
