package hir_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/hir"
	"ase/internal/intern"
	"ase/internal/lexer"
	"ase/internal/parser"
	"ase/internal/source"
	"ase/internal/token"
)

// parseSource зеркалит гарнитуру internal/resolve: лексирует и парсит текст
// целиком, возвращая корневой File.
func parseSource(t *testing.T, input string) ast.File {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ase", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	tree := parser.Parse(toks, reporter)
	return ast.NewFile(ast.NewGreenTree(tree, tree.Root()))
}

// lowerSource парсит input и прогоняет его через Lowerer, возвращая
// получившийся модуль, интернер и собранные диагностики.
func lowerSource(t *testing.T, input string) (*hir.Module, *intern.Interner, *diag.Bag) {
	t.Helper()
	file := parseSource(t, input)
	bag := diag.NewBag(64)
	in := intern.New()
	l := hir.NewLowerer(in, diag.BagReporter{Bag: bag})
	m := l.LowerFile(file)
	return m, in, bag
}

func dumpOne(t *testing.T, m *hir.Module, in *intern.Interner) string {
	t.Helper()
	require.Len(t, m.TopLevels, 1, "expected exactly one top-level")
	var buf bytes.Buffer
	hir.NewPrinter(&buf, in).PrintTopLevel(m.TopLevels[0])
	return buf.String()
}

// TestLowerBindingGroupFusion проверяет, что сигнатура и единственное
// присваивание с одним именем сливаются в одну группу привязок.
func TestLowerBindingGroupFusion(t *testing.T) {
	m, in, bag := lowerSource(t, "id : Int;\nid x = x;")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.Contains(t, out, "binding-group id")
	require.Contains(t, out, "clause")
}

// TestLowerMultipleAssignsFuseIntoOneGroup проверяет, что несколько
// присваиваний с одним именем дают одну группу с несколькими clause.
func TestLowerMultipleAssignsFuseIntoOneGroup(t *testing.T) {
	m, in, bag := lowerSource(t, "f x = x;\nf y = y;")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.Equal(t, 2, strings.Count(out, "(clause"))
}

// TestLowerDuplicateSignature проверяет, что вторая сигнатура для того же
// имени порождает диагностику LowerDuplicateSignature, но первая пара всё
// равно сливается в одну группу.
func TestLowerDuplicateSignature(t *testing.T) {
	m, _, bag := lowerSource(t, "id : Int;\nid : Bool;\nid x = x;")
	require.True(t, bag.HasErrors())
	require.Len(t, m.TopLevels, 1)
}

// TestLowerArithmeticInfix проверяет, что '+' лёг в выделенный callee, а не в
// вызов оператора-как-ссылки.
func TestLowerArithmeticInfix(t *testing.T) {
	m, in, bag := lowerSource(t, "add x y = x + y;")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.Contains(t, out, "(+ x y)")
}

// TestLowerNonArithmeticInfixBecomesCall проверяет, что оператор, не входящий
// в {+,-,*,/}, лёг в два каррированных вызова операторной ссылки.
func TestLowerNonArithmeticInfixBecomesCall(t *testing.T) {
	m, in, bag := lowerSource(t, "f x y = x ++ y;")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.Contains(t, out, "(call (call ++ x) y)")
}

// TestLowerIfDesugarsToMatch проверяет, что if/then/else опускается в match
// по булеву значению с двумя ветвями.
func TestLowerIfDesugarsToMatch(t *testing.T) {
	m, in, bag := lowerSource(t, "f x = if x then 1 else 0;")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.Contains(t, out, "(match x (true 1i) (false 0i))")
}

// TestLowerEnumNullaryVariant проверяет, что вариант без списка параметров
// опускается в нульарный конструктор самого enum.
func TestLowerEnumNullaryVariant(t *testing.T) {
	m, in, bag := lowerSource(t, "enum Option a { None, Some(a) }")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.Contains(t, out, "(variant None Option)")
}

// TestLowerEnumCtorVariantBuildsArrow проверяет, что вариант с параметрами
// опускается в правоассоциативный тип-стрелку, завершающийся самим enum.
func TestLowerEnumCtorVariantBuildsArrow(t *testing.T) {
	m, in, bag := lowerSource(t, "enum Option a { None, Some(a) }")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	var buf bytes.Buffer
	p := hir.NewPrinter(&buf, in)
	p.PrintTopLevel(m.TopLevels[0])
	require.Contains(t, buf.String(), "(variant Some (-> a Option))")
}

// TestLowerRecordMissingFieldTypeDiagnoses проверяет, что поле record с
// повреждённым типом порождает диагностику ещё на этапе опускания в HIR.
func TestLowerRecordMissingFieldTypeDiagnoses(t *testing.T) {
	_, _, bag := lowerSource(t, "record Pair a b { fst : a, snd : ; }")
	require.True(t, bag.HasErrors())
}

// TestLowerRecordFields проверяет, что все поля record интернируются парами
// (имя, тип) в порядке объявления.
func TestLowerRecordFields(t *testing.T) {
	m, in, bag := lowerSource(t, "record Pair a b { fst : a, snd : b }")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.True(t, strings.HasPrefix(out, "(struct Pair"))
	require.Contains(t, out, "(fst a)")
	require.Contains(t, out, "(snd b)")
}

// TestLowerLambdaAndBlockTail проверяет, что блок без завершающего выражения
// получает хвостом nothing, а с завершающим — само это выражение.
func TestLowerLambdaAndBlockTail(t *testing.T) {
	m, in, bag := lowerSource(t, "f x = { let y = x; y };")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.Contains(t, out, "(block (let! y x) y)")

	m, in, bag = lowerSource(t, "f x = { let y = x; };")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out = dumpOne(t, m, in)
	require.Contains(t, out, "(block (let! y x) nothing)")

	m, in, bag = lowerSource(t, "g = λ z -> z;")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out = dumpOne(t, m, in)
	require.Contains(t, out, "(lam (z) z)")
}

// TestLowerSelfParameterPattern проверяет, что явный self в позиции
// параметра опускается в This-паттерн.
func TestLowerSelfParameterPattern(t *testing.T) {
	m, in, bag := lowerSource(t,
		"trait Eq a { eq : Bool; }\ntype Foo = Int;\ninstance Eq Foo { eq self y = true; }")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	require.Len(t, m.TopLevels, 3)
	var buf bytes.Buffer
	hir.NewPrinter(&buf, in).PrintTopLevel(m.TopLevels[2])
	require.Contains(t, buf.String(), "(instance (app Eq Foo)")
	require.Contains(t, buf.String(), "self")
}

// TestLowerInfixCommandRecordsAttribute проверяет, что #infixl/#infixr
// опускаются в top-level Command с вложенным атрибутом приоритета.
func TestLowerInfixCommandRecordsAttribute(t *testing.T) {
	m, in, bag := lowerSource(t, "#infixl \"++\", 5;")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	out := dumpOne(t, m, in)
	require.Contains(t, out, "(command (infixl \"++\" 5))")
}
