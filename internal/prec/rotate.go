package prec

import "ase/internal/ast"

// pseudo-operator precedences for the three binary shapes that never carry
// operator text. Accessor (`.`) binds tighter than every arithmetic
// operator; Ann (`:`) and Qual bind looser than all of them, with Ann
// binding slightly tighter than Qual so `x : T => C` reads as
// `(x : T) => C` rather than `x : (T => C)`.
const (
	accessorLevel = 100
	annLevel      = 0
	qualLevel     = -1
)

// nodePrec resolves a binary-shaped Expr's effective (level, associativity)
// for rotation purposes, abstracting over whether the node carries operator
// text (Infix) or a fixed pseudo-operator (Accessor, Ann, Qual).
func nodePrec(e ast.Expr, table *Table) Entry {
	switch e.Kind() {
	case ast.ExprInfix:
		if op, ok := e.Op(); ok {
			return table.Lookup(op.Text)
		}
		return Entry{Level: fallbackLevel, Assoc: AssocLeft}
	case ast.ExprAccessor:
		return Entry{Level: accessorLevel, Assoc: AssocLeft}
	case ast.ExprAnn:
		return Entry{Level: annLevel, Assoc: AssocRight}
	case ast.ExprQual:
		return Entry{Level: qualLevel, Assoc: AssocRight}
	default:
		return Entry{Level: fallbackLevel, Assoc: AssocLeft}
	}
}

func isBinary(e ast.Expr) bool {
	switch e.Kind() {
	case ast.ExprInfix, ast.ExprAccessor, ast.ExprAnn, ast.ExprQual:
		return true
	default:
		return false
	}
}

// Rotate descends into every expression shape, recursively rotating nested
// operands before fixing up the binary-shaped node itself (if e is one).
// Non-binary shapes (App, Lam, Let, If, Match, Array, Group) are walked so
// operands buried inside them get fixed up too, but they are never
// rotation targets themselves.
func Rotate(e ast.Expr, table *Table) ast.Expr {
	switch e.Kind() {
	case ast.ExprApp:
		replaceIfChanged(e.Callee(), table, e.SetCallee)
		replaceIfChanged(e.Arg(), table, e.SetArg)
		return e
	case ast.ExprLam:
		replaceIfChanged(e.Body(), table, e.SetBody)
		return e
	case ast.ExprLet:
		replaceIfChanged(e.Value(), table, e.SetValue)
		replaceIfChanged(e.Body(), table, e.SetBody)
		return e
	case ast.ExprIf:
		replaceIfChanged(e.Cond(), table, e.SetCond)
		replaceIfChanged(e.Then(), table, e.SetThen)
		replaceIfChanged(e.Else(), table, e.SetElse)
		return e
	case ast.ExprMatch:
		replaceIfChanged(e.Scrutinee(), table, e.SetScrutinee)
		for _, arm := range e.Arms() {
			replaceIfChanged(arm.Body(), table, arm.SetBody)
		}
		return e
	case ast.ExprGroup, ast.ExprPi, ast.ExprSigma, ast.ExprHelp:
		replaceIfChanged(e.Body(), table, e.SetBody)
		return e
	case ast.ExprArray, ast.ExprBlock:
		// Elementwise or statement-sequence shapes without a dedicated
		// setter here are left as-is; their operands still rotate
		// once the lowering pass visits them directly through HIR's own
		// expression walk.
		return e
	}

	if !isBinary(e) {
		return e
	}

	rhs := e.RHS().Get()
	fixedRHS := Rotate(rhs, table)
	if fixedRHS.Green != rhs.Green {
		e.SetRHS(fixedRHS)
	}

	left := e.LHS().Get()
	if !isBinary(left) {
		return e
	}

	nodeEntry := nodePrec(e, table)
	leftEntry := nodePrec(left, table)

	needsRotation := leftEntry.Level < nodeEntry.Level ||
		(leftEntry.Level == nodeEntry.Level && nodeEntry.Assoc == AssocRight)
	if !needsRotation {
		return e
	}

	// Rotate right: `left` becomes the new root, `e` becomes left's new
	// right child with left's old right child sliding into e's left slot.
	leftRHS := left.RHS().Get()
	e.SetLHS(leftRHS)
	rotated := Rotate(e, table)
	left.SetRHS(rotated)
	return left
}

// replaceIfChanged resolves a Cursor[ast.Expr] accessor, rotates the result,
// and writes it back via set only if rotation actually produced a different
// green handle (sparing a redundant mutation when nothing moved).
func replaceIfChanged(c ast.Cursor[ast.Expr], table *Table, set func(ast.Expr)) {
	orig := c.Get()
	if orig.IsError() {
		return
	}
	fixed := Rotate(orig, table)
	if fixed.Green != orig.Green {
		set(fixed)
	}
}

// RotateFile applies Rotate to every expression reachable from a file's
// declarations, in place.
func RotateFile(file ast.File, table *Table) {
	for _, d := range file.Decls() {
		rotateDecl(d, table)
	}
}

func rotateDecl(d ast.Decl, table *Table) {
	if t := d.Type().Get(); !t.IsError() {
		Rotate(t, table)
	}
	if v := d.Value().Get(); !v.IsError() {
		Rotate(v, table)
	}
	if tgt := d.Target().Get(); !tgt.IsError() {
		Rotate(tgt, table)
	}
	for _, m := range d.Members() {
		rotateDecl(m, table)
	}
	for _, f := range d.Fields() {
		if t := f.Type().Get(); !t.IsError() {
			Rotate(t, table)
		}
	}
	for _, v := range d.Variants() {
		for _, p := range v.Params() {
			if t := p.Type().Get(); !t.IsError() {
				Rotate(t, table)
			}
		}
	}
}
