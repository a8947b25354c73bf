package parser_test

import (
	"testing"

	"ase/internal/ast"
)

// TestParseInfixChainLeftAssoc проверяет, что цепочка бинарных операторов
// строится строго левоассоциативно на этапе разбора — перестановкой по
// приоритету занимается отдельный проход internal/prec.
func TestParseInfixChainLeftAssoc(t *testing.T) {
	file, bag := parseSource(t, "v = a + b * c;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	if len(decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(decls))
	}
	expr := decls[0].Value().Get()
	if expr.Kind() != ast.ExprInfix {
		t.Fatalf("expected outer ExprInfix, got %v", expr.Kind())
	}
	op, ok := expr.Op()
	if !ok || op.Text != "*" {
		t.Fatalf("expected outer op '*' (left-assoc, ignoring precedence), got %v ok=%v", op.Text, ok)
	}
	lhs := expr.LHS().Get()
	if lhs.Kind() != ast.ExprInfix {
		t.Fatalf("expected lhs to be ExprInfix, got %v", lhs.Kind())
	}
	lhsOp, ok := lhs.Op()
	if !ok || lhsOp.Text != "+" {
		t.Fatalf("expected inner op '+', got %v ok=%v", lhsOp.Text, ok)
	}
}

// TestParseAccessorChain проверяет разбор цепочки доступа через точку.
func TestParseAccessorChain(t *testing.T) {
	file, bag := parseSource(t, "v = a.b.c;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprAccessor {
		t.Fatalf("expected ExprAccessor, got %v", expr.Kind())
	}
	lhs := expr.LHS().Get()
	if lhs.Kind() != ast.ExprAccessor {
		t.Fatalf("expected nested ExprAccessor, got %v", lhs.Kind())
	}
}

// TestParseApplication проверяет juxtaposition-применение нескольких
// аргументов подряд как левоассоциативную цепочку App.
func TestParseApplication(t *testing.T) {
	file, bag := parseSource(t, "v = f x y;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprApp {
		t.Fatalf("expected ExprApp, got %v", expr.Kind())
	}
	arg := expr.Arg().Get()
	name, ok := arg.Name()
	if !ok || name.Text != "y" {
		t.Fatalf("expected outer arg 'y', got %v ok=%v", name.Text, ok)
	}
	callee := expr.Callee().Get()
	if callee.Kind() != ast.ExprApp {
		t.Fatalf("expected callee to be nested ExprApp, got %v", callee.Kind())
	}
}

// TestParseLambda проверяет разбор лямбды с явным и неявным параметром.
func TestParseLambda(t *testing.T) {
	file, bag := parseSource(t, "lam = λ x {y} -> x;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprLam {
		t.Fatalf("expected ExprLam, got %v", expr.Kind())
	}
	params := expr.Params()
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}
	if params[0].Kind() != ast.ParamExplicit {
		t.Fatalf("expected param 0 explicit, got %v", params[0].Kind())
	}
	if params[1].Kind() != ast.ParamImplicit {
		t.Fatalf("expected param 1 implicit, got %v", params[1].Kind())
	}
}

// TestParseIfThenElse проверяет структуру условного выражения.
func TestParseIfThenElse(t *testing.T) {
	file, bag := parseSource(t, "v = if a then b else c;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprIf {
		t.Fatalf("expected ExprIf, got %v", expr.Kind())
	}
	cond := expr.Cond().Get()
	if name, ok := cond.Name(); !ok || name.Text != "a" {
		t.Fatalf("expected cond 'a', got %v ok=%v", name.Text, ok)
	}
}

// TestParseLetIn проверяет разбор let-выражения с образцом слева.
func TestParseLetIn(t *testing.T) {
	file, bag := parseSource(t, "v = let x = 1 in x;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprLet {
		t.Fatalf("expected ExprLet, got %v", expr.Kind())
	}
	pat := expr.Pattern().Get()
	if pat.Kind() != ast.PatLocal {
		t.Fatalf("expected PatLocal, got %v", pat.Kind())
	}
}

// TestParseMatchArms проверяет разбор match-выражения с несколькими
// ветвями, включая конструкторный образец.
func TestParseMatchArms(t *testing.T) {
	file, bag := parseSource(t, "v = match x { case None -> 0; case Some(y) -> y };")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprMatch {
		t.Fatalf("expected ExprMatch, got %v", expr.Kind())
	}
	arms := expr.Arms()
	if len(arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(arms))
	}
	p0 := arms[0].Pattern().Get()
	if p0.Kind() != ast.PatGlobal {
		t.Fatalf("expected arm 0 pattern PatGlobal, got %v", p0.Kind())
	}
	p1 := arms[1].Pattern().Get()
	if p1.Kind() != ast.PatCtor {
		t.Fatalf("expected arm 1 pattern PatCtor, got %v", p1.Kind())
	}
	if len(p1.Args()) != 1 {
		t.Fatalf("expected 1 ctor arg, got %d", len(p1.Args()))
	}
}

// TestParseBlockExpr проверяет разбор блока с привязкой let, монадическим
// bind и завершающим выражением-значением.
func TestParseBlockExpr(t *testing.T) {
	file, bag := parseSource(t, "v = { let x = 1; y <- f x; x };")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprBlock {
		t.Fatalf("expected ExprBlock, got %v", expr.Kind())
	}
	stmts := expr.Stmts()
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}
	if stmts[0].Kind() != ast.StmtLet {
		t.Fatalf("expected stmt 0 StmtLet, got %v", stmts[0].Kind())
	}
	if stmts[1].Kind() != ast.StmtAsk {
		t.Fatalf("expected stmt 1 StmtAsk, got %v", stmts[1].Kind())
	}
	if stmts[2].Kind() != ast.StmtExprKind {
		t.Fatalf("expected stmt 2 StmtExprKind, got %v", stmts[2].Kind())
	}
}

// TestParseQuantifiedPi проверяет разбор зависимого Pi-типа с явным и
// неявным биндерами.
func TestParseQuantifiedPi(t *testing.T) {
	file, bag := parseSource(t, "t = Π (x : a) {y : b} -> c;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprPi {
		t.Fatalf("expected ExprPi, got %v", expr.Kind())
	}
	params := expr.Params()
	if len(params) != 2 {
		t.Fatalf("expected 2 binders, got %d", len(params))
	}
}

// TestParseQualifiedPath проверяет разбор составного пути через '::'.
func TestParseQualifiedPath(t *testing.T) {
	file, bag := parseSource(t, "v = Mod::Sub::name;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprQualifiedPath {
		t.Fatalf("expected ExprQualifiedPath, got %v", expr.Kind())
	}
	segs := expr.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].Text != "Mod" || segs[2].Text != "name" {
		t.Fatalf("unexpected segments: %v %v %v", segs[0].Text, segs[1].Text, segs[2].Text)
	}
}

// TestParseGroupVsUnit проверяет различение единицы () и скобочной группы.
func TestParseGroupVsUnit(t *testing.T) {
	file, bag := parseSource(t, "u = (); g = (x);")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	unit := decls[0].Value().Get()
	if unit.Kind() != ast.ExprTypeUnit {
		t.Fatalf("expected ExprTypeUnit, got %v", unit.Kind())
	}
	group := decls[1].Value().Get()
	if group.Kind() != ast.ExprGroup {
		t.Fatalf("expected ExprGroup, got %v", group.Kind())
	}
}

// TestParseHelpHole проверяет разбор типизированной дыры '?'.
func TestParseHelpHole(t *testing.T) {
	file, bag := parseSource(t, "v = ?;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	expr := file.Decls()[0].Value().Get()
	if expr.Kind() != ast.ExprHelp {
		t.Fatalf("expected ExprHelp, got %v", expr.Kind())
	}
}
