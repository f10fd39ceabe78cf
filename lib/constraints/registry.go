package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/logger"
)

type encodeFunc func(nextVar int, e lib.Element, ctx *Context) int

// registry is the dispatch table the distilled spec's REDESIGN FLAGS
// section asks for in place of dynamic string-keyed dispatch: an
// ElementKind enum plus a lookup table.
var registry = map[lib.ElementKind]encodeFunc{
	lib.KindGrid:           encodeGrid,
	lib.KindBox:            encodeBox,
	lib.KindDisjointGroups: encodeDisjointGroups,
	lib.KindGivens:         encodeGivens,
	lib.KindFilled:         encodeGivens,
	lib.KindLittleKiller:   encodeLittleKiller,
	lib.KindThermo:         encodeThermo,
	lib.KindSlowThermo:     encodeSlowThermo,
	lib.KindWhisper:        encodeWhisper,
	lib.KindDutchWhisper:   encodeDutchWhisper,
	lib.KindRenban:         encodeRenban,
	lib.KindPalindrome:     encodePalindrome,
	lib.KindKiller:         encodeKiller,
}

// EncodeBoard appends clauses for every element on the board, in element
// order, and returns the updated next-free-variable counter. Elements
// whose kind has no registered encoder go through skipElement.
func EncodeBoard(board *lib.Board, clauses *lib.ClauseBuffer, nextVar int) int {
	ctx := &Context{N: board.Size(), Clauses: clauses}
	for _, e := range board.Elements {
		fn, ok := registry[e.Kind]
		if !ok {
			skipElement(e)
			continue
		}
		before := nextVar
		nextVar = fn(nextVar, e, ctx)
		logger.DebugConstraint(string(e.Kind), "id=%s encoded, %d aux vars allocated, %d clauses total so far", e.ID, nextVar-before, len(clauses.Clauses()))
	}
	return nextVar
}
