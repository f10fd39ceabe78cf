package lib

import "fmt"

// CantAttempt is the feasibility gate: it rejects boards this core
// cannot handle before any encoding work starts. It returns a
// human-readable message on rejection, or "" (ok=false is signaled by a
// non-empty message) on success.
func CantAttempt(b *Board) string {
	if b.Grid.Width != b.Grid.Height {
		return "Grid is not square."
	}

	n := b.Grid.Width
	for _, e := range b.Elements {
		if !knownKinds[e.Kind] {
			return fmt.Sprintf("Unknown element type: %q.", e.Kind)
		}
		if e.Kind == KindBox || e.Kind == KindDisjointGroups {
			if _, _, ok := BoxDims(n); !ok {
				return fmt.Sprintf("Grid size %d has no box decomposition.", n)
			}
		}
	}
	return ""
}
