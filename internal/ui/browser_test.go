package ui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/hir"
	"ase/internal/intern"
	"ase/internal/lexer"
	"ase/internal/parser"
	"ase/internal/source"
	"ase/internal/token"
	"ase/internal/ui"
)

// buildModule лексирует, парсит и опускает исходный текст в HIR-модуль,
// возвращая также разобранный файл AST для построения BrowserModel.
func buildModule(t *testing.T, input string) (ast.File, *hir.Module, *intern.Interner) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("browser_test.ase", []byte(input))
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
	astFile := ast.NewFile(ast.NewGreenTree(tree, tree.Root()))

	in := intern.New()
	module := hir.NewLowerer(in, reporter).LowerFile(astFile)
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	return astFile, module, in
}

// TestNewBrowserModelListsEveryDeclaration проверяет, что модель строит
// один элемент списка на каждое объявление верхнего уровня файла.
func TestNewBrowserModelListsEveryDeclaration(t *testing.T) {
	astFile, module, in := buildModule(t, "id x = x;\ndouble x = x;")
	model := ui.NewBrowserModel("browser_test.ase", astFile, module, in)

	_, cmd := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Nil(t, cmd)
}

// TestBrowserModelQuitsOnQ проверяет, что клавиша "q" возвращает tea.Quit.
func TestBrowserModelQuitsOnQ(t *testing.T) {
	astFile, module, in := buildModule(t, "id x = x;")
	model := ui.NewBrowserModel("browser_test.ase", astFile, module, in)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	browser, ok := updated.(ui.BrowserModel)
	require.True(t, ok)

	_, cmd := browser.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}

// TestBrowserModelViewBeforeReady проверяет плейсхолдер, показываемый до
// первого WindowSizeMsg.
func TestBrowserModelViewBeforeReady(t *testing.T) {
	astFile, module, in := buildModule(t, "id x = x;")
	model := ui.NewBrowserModel("browser_test.ase", astFile, module, in)
	require.Contains(t, model.View(), "loading")
}
