package resolve

import "ase/internal/intern"

// CtorInfo records one enum variant's shape for pattern disambiguation.
type CtorInfo struct {
	Decl  Symbol
	Arity int
}

// ConstructorTable answers constructor_data(name): whether a capitalized
// identifier names a known enum variant, and if so its arity. It is
// populated by a first walk over every enum declaration in the file before
// any pattern is resolved, matching the teacher's two-pass declare-then-use
// discipline (internal/symbols/resolve_declarations.go).
type ConstructorTable struct {
	byName map[intern.NameID]CtorInfo
}

// NewConstructorTable creates an empty table.
func NewConstructorTable() *ConstructorTable {
	return &ConstructorTable{byName: make(map[intern.NameID]CtorInfo)}
}

// Declare registers a variant's name and arity. A later declaration with the
// same name overwrites the earlier one; the caller is responsible for
// surfacing a DuplicateSymbol diagnostic before that happens if desired.
func (t *ConstructorTable) Declare(name intern.NameID, info CtorInfo) {
	t.byName[name] = info
}

// Lookup implements constructor_data(name).
func (t *ConstructorTable) Lookup(name intern.NameID) (CtorInfo, bool) {
	info, ok := t.byName[name]
	return info, ok
}
