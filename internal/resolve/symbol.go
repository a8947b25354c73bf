package resolve

import (
	"ase/internal/cst"
	"ase/internal/project"
)

// SymbolKind classifies what a bound name refers to.
type SymbolKind uint8

const (
	// SymBinding is an ordinary value or type binder (let, lambda/pi
	// parameter, top-level signature/assign, record/enum/trait/class name).
	SymBinding SymbolKind = iota
	// SymConstructor is an enum variant constructor.
	SymConstructor
	// SymModule is an imported module, reachable via a qualified path.
	SymModule
)

// Symbol is what a name resolves to.
type Symbol struct {
	Kind SymbolKind
	// Decl is the declaring CST node, for SymBinding/SymConstructor.
	Decl cst.NodeID
	// Arity is the number of positional arguments SymConstructor expects.
	Arity int
	// Module is set for SymModule.
	Module project.ModuleID
}

// ResKind classifies the annotation the resolver attaches to a use site.
type ResKind uint8

const (
	// ResUnresolved marks a use site that produced a diagnostic.
	ResUnresolved ResKind = iota
	// ResBindingUse marks a resolved reference to a SymBinding.
	ResBindingUse
	// ResConstructorUse marks a resolved reference to a SymConstructor.
	ResConstructorUse
	// ResModuleUse marks a resolved reference to a SymModule.
	ResModuleUse
)

// Resolution is the dynamic annotation attached to every LocalExpr,
// QualifiedPath, and GlobalPat/PatCtor node the resolver visits.
type Resolution struct {
	Kind   ResKind
	Symbol Symbol
}
