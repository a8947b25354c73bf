package parser_test

import (
	"testing"

	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/lexer"
	"ase/internal/parser"
	"ase/internal/source"
	"ase/internal/token"
)

// parseSource лексирует и парсит исходный текст целиком, возвращая
// корневой File и накопленный мешок диагностик.
func parseSource(t *testing.T, input string) (ast.File, *diag.Bag) {
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
	root := ast.NewFile(ast.NewGreenTree(tree, tree.Root()))
	return root, bag
}
