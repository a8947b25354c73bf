package prec

import (
	"strconv"
	"strings"

	"ase/internal/ast"
	"ase/internal/diag"
	"ase/internal/source"
	"ase/internal/token"
)

// ApplyCommands scans a file's top-level declarations for `#infixl`/
// `#infixr` commands and folds each into table, in source order. Any other
// `#`-prefixed command is left for a later pass to interpret (or flagged
// unknown if nothing ever claims it — that check lives in the driver that
// owns the full command registry, not here).
func ApplyCommands(file ast.File, table *Table, r diag.Reporter) {
	for _, d := range file.Decls() {
		if d.Kind() != ast.DeclCommand {
			continue
		}
		name, ok := d.Command()
		if !ok {
			continue
		}
		switch name.Text {
		case "infixl":
			applyFixity(d, table, AssocLeft, r)
		case "infixr":
			applyFixity(d, table, AssocRight, r)
		default:
			// Not a precedence command — ignore here.
		}
	}
}

// applyFixity parses `#infixl "op", N;` / `#infixr "op", N;` out of a
// DeclCommand's argument list and installs it into table.
func applyFixity(d ast.Decl, table *Table, assoc Assoc, r diag.Reporter) {
	args := d.Args()
	if len(args) != 2 {
		reportBadArgs(d, r)
		return
	}

	opTok, ok := soleToken(args[0])
	if !ok {
		reportBadArgs(d, r)
		return
	}
	op := strings.Trim(opTok.Text, "\"")
	if op == "" {
		reportBadArgs(d, r)
		return
	}

	levelTok, ok := soleToken(args[1])
	if !ok {
		reportBadArgs(d, r)
		return
	}
	level, err := strconv.Atoi(levelTok.Text)
	if err != nil {
		reportBadArgs(d, r)
		return
	}

	if !table.Set(op, level, assoc) {
		span := opTok.Span
		diag.ReportError(r, diag.SynDuplicatePrecedence, span,
			"operator \""+op+"\" already has a declared precedence").Emit()
	}
}

// soleToken extracts a single leaf token from a CommandArg green tree —
// every current command argument (an operator literal, a precedence level)
// is a single token wrapped in a CommandArg node.
func soleToken(arg *ast.GreenTree) (token.Token, bool) {
	toks := arg.Tokens()
	if len(toks) != 1 {
		return token.Token{}, false
	}
	return toks[0], true
}

func reportBadArgs(d ast.Decl, r diag.Reporter) {
	span := source.Span{}
	if tok, ok := d.Command(); ok {
		span = tok.Span
	}
	diag.ReportError(r, diag.SynCommandBadArgs, span,
		"expected `\"op\", N` arguments").Emit()
}
