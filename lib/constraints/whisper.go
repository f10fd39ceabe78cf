package constraints

import "github.com/eftil/sudoku-variant-core/lib"

// whisperDelta and dutchWhisperDelta mirror the warning evaluator's
// constants (§4.6): German whisper requires a gap of (N+1)>>1, Dutch
// whisper one less.
func whisperDelta(n int) int      { return (n + 1) >> 1 }
func dutchWhisperDelta(n int) int { return ((n + 1) >> 1) - 1 }

func encodeWhisper(nextVar int, e lib.Element, ctx *Context) int {
	return encodeWhisperDelta(nextVar, e, ctx, whisperDelta(ctx.N))
}

func encodeDutchWhisper(nextVar int, e lib.Element, ctx *Context) int {
	return encodeWhisperDelta(nextVar, e, ctx, dutchWhisperDelta(ctx.N))
}

// encodeWhisperDelta forbids, for each adjacent pair along every line,
// any (va, vb) whose absolute difference falls below delta.
func encodeWhisperDelta(nextVar int, e lib.Element, ctx *Context, delta int) int {
	n := ctx.N
	for _, line := range e.Lines {
		for i := 0; i+1 < len(line); i++ {
			a, b := line[i], line[i+1]
			for va := 0; va < n; va++ {
				for vb := 0; vb < n; vb++ {
					diff := va - vb
					if diff < 0 {
						diff = -diff
					}
					if diff < delta {
						ctx.Clauses.Add(-litAt(ctx, a, va), -litAt(ctx, b, vb))
					}
				}
			}
		}
	}
	return nextVar
}
