// Package lib holds the board snapshot type and the shared primitives
// (variable allocation, clause buffer, box geometry) that the constraint
// encoders and the warning evaluator both build on.
package lib

import "fmt"

// BoardError represents errors from board construction or encoding.
type BoardError struct {
	Message string
}

func (e *BoardError) Error() string {
	return e.Message
}

// ElementKind tags the payload shape of a Board element. It is the Go
// realization of the distilled spec's string `type` field.
type ElementKind string

const (
	KindGrid           ElementKind = "grid"
	KindBox            ElementKind = "box"
	KindDisjointGroups ElementKind = "disjointGroups"
	KindGivens         ElementKind = "givens"
	KindFilled         ElementKind = "filled"
	KindLittleKiller   ElementKind = "littleKiller"
	KindThermo         ElementKind = "thermo"
	KindSlowThermo     ElementKind = "slowThermo"
	KindBetween        ElementKind = "between"
	KindDoubleArrow    ElementKind = "doubleArrow"
	KindLockout        ElementKind = "lockout"
	KindPalindrome     ElementKind = "palindrome"
	KindWhisper        ElementKind = "whisper"
	KindDutchWhisper   ElementKind = "dutchWhisper"
	KindRenban         ElementKind = "renban"
	KindKiller         ElementKind = "killer"
	KindArrow          ElementKind = "arrow"
	KindClone          ElementKind = "clone"
	KindQuadruple      ElementKind = "quadruple"
	KindCorner         ElementKind = "corner"
	KindCenter         ElementKind = "center"
	KindColors         ElementKind = "colors"
)

// knownKinds is the feasibility gate's vocabulary: every tag the board
// snapshot may carry, encoded or not.
var knownKinds = map[ElementKind]bool{
	KindGrid: true, KindBox: true, KindDisjointGroups: true,
	KindGivens: true, KindFilled: true, KindLittleKiller: true,
	KindThermo: true, KindSlowThermo: true, KindBetween: true,
	KindDoubleArrow: true, KindLockout: true, KindPalindrome: true,
	KindWhisper: true, KindDutchWhisper: true, KindRenban: true,
	KindKiller: true, KindArrow: true, KindClone: true,
	KindQuadruple: true, KindCorner: true, KindCenter: true, KindColors: true,
}

// Element is one entry of a board snapshot. Which fields are populated
// depends on Kind; see the distilled spec's payload table.
type Element struct {
	ID   string
	Kind ElementKind

	// Digits holds cellIdx -> digit (1..N) for givens/filled.
	Digits map[int]int

	// Sums holds the target sum keyed by the same string id used for
	// littleKiller (a decimal-rendered diagonal index, see
	// lib.LittleKillerDiagonal) and for killer (a cage id, matching a key
	// of Lines).
	Sums map[string]int

	// Lines holds lineId -> ordered cell sequence for thermo-family,
	// whisper-family, renban, palindrome and killer-cage-shaped elements.
	Lines map[string][]int

	// Bool carries the disjointGroups on/off flag.
	Bool bool
}

// Grid is the board's rectangle. The core requires Width == Height.
type Grid struct {
	Width  int
	Height int
}

// Board is an immutable snapshot consumed by one solve or one warning pass.
type Board struct {
	Grid     Grid
	Elements []Element
}

// NewBoard creates an empty board of the given square size.
func NewBoard(size int) *Board {
	return &Board{Grid: Grid{Width: size, Height: size}}
}

// AddElement appends an element to the board snapshot.
func (b *Board) AddElement(e Element) {
	b.Elements = append(b.Elements, e)
}

// Size returns N, the board's side length (Width, which must equal Height
// for any board that passed the feasibility gate).
func (b *Board) Size() int {
	return b.Grid.Width
}

// ElementsOfKind returns every element carrying the given tag, in
// snapshot order. Order among elements is not itself meaningful (the
// distilled spec's board format keys elements by an opaque id), but a
// stable iteration order keeps clause emission reproducible.
func (b *Board) ElementsOfKind(kind ElementKind) []Element {
	var out []Element
	for _, e := range b.Elements {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (b *Board) String() string {
	return fmt.Sprintf("Board{%dx%d, %d elements}", b.Grid.Width, b.Grid.Height, len(b.Elements))
}
