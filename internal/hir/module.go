package hir

import (
	"ase/internal/intern"
	"ase/internal/source"
)

// Module is one file's lowered HIR: an ordered list of top-level IDs plus
// the span provenance recorded the first time each ID was produced. Spans
// are not part of an ID's structural identity (two occurrences of the same
// shape at different source positions still hash-cons to the same ID,
// matching the "structurally equal ⇒ identical ID" invariant) so only the
// first-seen location survives; see DESIGN.md for this tradeoff.
type Module struct {
	TopLevels []intern.TopLevelID

	ExprSpans     map[intern.ExprID]source.Span
	TypeSpans     map[intern.TypeID]source.Span
	PatternSpans  map[intern.PatternID]source.Span
	StmtSpans     map[intern.StmtID]source.Span
	TopLevelSpans map[intern.TopLevelID]source.Span
}

func newModule() *Module {
	return &Module{
		ExprSpans:     make(map[intern.ExprID]source.Span),
		TypeSpans:     make(map[intern.TypeID]source.Span),
		PatternSpans:  make(map[intern.PatternID]source.Span),
		StmtSpans:     make(map[intern.StmtID]source.Span),
		TopLevelSpans: make(map[intern.TopLevelID]source.Span),
	}
}
