package warnings

import "github.com/eftil/sudoku-variant-core/lib"

// whisperDeltaN and dutchWhisperDeltaN mirror the SAT encoders' delta
// formulas (lib/constraints/whisper.go): German whisper requires a gap of
// (N+1)>>1, Dutch whisper one less.
func whisperDeltaN(n int) int      { return (n + 1) >> 1 }
func dutchWhisperDeltaN(n int) int { return ((n + 1) >> 1) - 1 }

// evalWhisper flags both cells of any adjacent, fully-filled pair whose
// digits differ by less than delta.
func evalWhisper(line []int, digits *lib.DigitMap, delta int, b *Bitset) {
	for i := 0; i+1 < len(line); i++ {
		a, c := line[i], line[i+1]
		da, dc := digits.GetIndex(a), digits.GetIndex(c)
		if da == 0 || dc == 0 {
			continue
		}
		diff := da - dc
		if diff < 0 {
			diff = -diff
		}
		if diff < delta {
			b.flag(a)
			b.flag(c)
		}
	}
}
