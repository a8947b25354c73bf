package parser_test

import (
	"testing"

	"ase/internal/ast"
)

// TestParseUseDecl проверяет разбор директивы use с составным путём.
func TestParseUseDecl(t *testing.T) {
	file, bag := parseSource(t, "use Foo::Bar::Baz;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	if len(decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(decls))
	}
	if decls[0].Kind() != ast.DeclUse {
		t.Fatalf("expected DeclUse, got %v", decls[0].Kind())
	}
	path := decls[0].Path()
	if len(path) != 3 {
		t.Fatalf("expected 3 path segments, got %d", len(path))
	}
	if path[0].Text != "Foo" || path[1].Text != "Bar" || path[2].Text != "Baz" {
		t.Fatalf("unexpected path: %v %v %v", path[0].Text, path[1].Text, path[2].Text)
	}
}

// TestParseSignatureThenAssign проверяет, что подпись и последующее
// определение парсятся как два отдельных декларативных узла.
func TestParseSignatureThenAssign(t *testing.T) {
	file, bag := parseSource(t, "add : Int -> Int -> Int;\nadd x y = x + y;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	if len(decls) != 2 {
		t.Fatalf("expected 2 decls, got %d", len(decls))
	}
	if decls[0].Kind() != ast.DeclSignature {
		t.Fatalf("expected DeclSignature, got %v", decls[0].Kind())
	}
	if decls[1].Kind() != ast.DeclAssign {
		t.Fatalf("expected DeclAssign, got %v", decls[1].Kind())
	}
	name, ok := decls[1].Name()
	if !ok || name.Text != "add" {
		t.Fatalf("expected assign name 'add', got %v ok=%v", name.Text, ok)
	}
	if len(decls[1].Params()) != 2 {
		t.Fatalf("expected 2 params, got %d", len(decls[1].Params()))
	}
}

// TestParseRecordFields проверяет разбор полей record-декларации.
func TestParseRecordFields(t *testing.T) {
	file, bag := parseSource(t, "record Pair a b { fst : a, snd : b }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	if len(decls) != 1 || decls[0].Kind() != ast.DeclRecord {
		t.Fatalf("expected 1 DeclRecord, got %v", decls)
	}
	fields := decls[0].Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	n0, _ := fields[0].Name()
	n1, _ := fields[1].Name()
	if n0.Text != "fst" || n1.Text != "snd" {
		t.Fatalf("unexpected field names: %v %v", n0.Text, n1.Text)
	}
	if len(decls[0].Params()) != 2 {
		t.Fatalf("expected 2 type params, got %d", len(decls[0].Params()))
	}
}

// TestParseEnumVariants проверяет оба стиля вариантов перечисления.
func TestParseEnumVariants(t *testing.T) {
	file, bag := parseSource(t, "enum Option a { None, Some(a) }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	if len(decls) != 1 || decls[0].Kind() != ast.DeclEnum {
		t.Fatalf("expected 1 DeclEnum, got %v", decls)
	}
	variants := decls[0].Variants()
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if variants[0].Kind() != ast.VariantTypeStyle {
		t.Fatalf("expected variant 0 type-style, got %v", variants[0].Kind())
	}
	if variants[1].Kind() != ast.VariantCtorStyle {
		t.Fatalf("expected variant 1 ctor-style, got %v", variants[1].Kind())
	}
	if len(variants[1].Params()) != 1 {
		t.Fatalf("expected 1 ctor param, got %d", len(variants[1].Params()))
	}
}

// TestParseTraitMembers проверяет, что вложенные сигнатуры попадают в
// тело trait-декларации.
func TestParseTraitMembers(t *testing.T) {
	file, bag := parseSource(t, "trait Eq a { eq : a -> a -> Bool; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	if len(decls) != 1 || decls[0].Kind() != ast.DeclTrait {
		t.Fatalf("expected 1 DeclTrait, got %v", decls)
	}
	members := decls[0].Members()
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].Kind() != ast.DeclSignature {
		t.Fatalf("expected member to be DeclSignature, got %v", members[0].Kind())
	}
}

// TestParseInstanceTarget проверяет, что instance сохраняет выражение
// реализуемого типажа/типа.
func TestParseInstanceTarget(t *testing.T) {
	file, bag := parseSource(t, "instance Eq Foo { eq x y = true; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	if len(decls) != 1 || decls[0].Kind() != ast.DeclInstance {
		t.Fatalf("expected 1 DeclInstance, got %v", decls)
	}
	target := decls[0].Target().Get()
	if target.IsError() {
		t.Fatal("expected a resolved target expression")
	}
	if target.Kind() != ast.ExprApp {
		t.Fatalf("expected target to be an application (Eq Foo), got %v", target.Kind())
	}
}

// TestParseInfixCommand проверяет разбор директивы #infixl с аргументами.
func TestParseInfixCommand(t *testing.T) {
	file, bag := parseSource(t, "#infixl \"+\", 10;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	decls := file.Decls()
	if len(decls) != 1 || decls[0].Kind() != ast.DeclCommand {
		t.Fatalf("expected 1 DeclCommand, got %v", decls)
	}
	cmd, ok := decls[0].Command()
	if !ok || cmd.Text != "infixl" {
		t.Fatalf("expected command 'infixl', got %v ok=%v", cmd.Text, ok)
	}
	if len(decls[0].Args()) != 2 {
		t.Fatalf("expected 2 command args, got %d", len(decls[0].Args()))
	}
}
