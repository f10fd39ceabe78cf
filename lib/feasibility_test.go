package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCantAttemptRejectsNonSquareGrid(t *testing.T) {
	b := &Board{Grid: Grid{Width: 9, Height: 8}}
	assert.Equal(t, "Grid is not square.", CantAttempt(b))
}

func TestCantAttemptRejectsUnknownKind(t *testing.T) {
	b := NewBoard(9)
	b.AddElement(Element{ID: "x", Kind: ElementKind("notAThing")})
	msg := CantAttempt(b)
	assert.Contains(t, msg, "Unknown element type")
}

func TestCantAttemptRejectsUnfactorableBoxSize(t *testing.T) {
	b := NewBoard(7)
	b.AddElement(Element{ID: "box", Kind: KindBox})
	msg := CantAttempt(b)
	assert.Contains(t, msg, "no box decomposition")
}

func TestCantAttemptAcceptsPlainGrid(t *testing.T) {
	b := NewBoard(9)
	b.AddElement(Element{ID: "grid", Kind: KindGrid})
	b.AddElement(Element{ID: "box", Kind: KindBox})
	assert.Equal(t, "", CantAttempt(b))
}
