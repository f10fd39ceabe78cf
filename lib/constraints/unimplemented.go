package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/logger"
)

// annotationOnlyKinds contribute nothing to the encoding pipeline and are
// skipped silently: they are pure editor-level markers with no bearing
// on satisfiability, per the distilled spec's §4.3 "unimplemented kinds"
// note.
var annotationOnlyKinds = map[lib.ElementKind]bool{
	lib.KindCorner:    true,
	lib.KindCenter:    true,
	lib.KindColors:    true,
	lib.KindArrow:     true,
	lib.KindClone:     true,
	lib.KindQuadruple: true,
}

// warningsOnlyKinds have a warning-evaluator rule (lib/warnings) but no
// SAT encoder: their semantics gate on a head/tail cell's actual value,
// which would need a per-value case split none of the other added
// encoders require (see SPEC_FULL.md §4.9). Skipping them here is logged,
// per the distilled spec's instruction to preserve the silent-skip
// behavior only with an explicit warning.
var warningsOnlyKinds = map[lib.ElementKind]bool{
	lib.KindBetween:     true,
	lib.KindDoubleArrow: true,
	lib.KindLockout:     true,
}

// skipElement handles an element whose kind has no entry in registry.
func skipElement(e lib.Element) {
	if annotationOnlyKinds[e.Kind] {
		return
	}
	if warningsOnlyKinds[e.Kind] {
		logger.Warn("constraints: %q (id=%s) has no SAT encoder, enforced as a warning only", e.Kind, e.ID)
		return
	}
	logger.Warn("constraints: unknown element kind %q (id=%s) skipped", e.Kind, e.ID)
}
