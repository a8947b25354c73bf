// Package parser implements the error-resilient, event-driven parser
// driver: a recursive-descent grammar over internal/token's token stream
// that emits an internal/cst.Sink event log rather than building a tree
// directly, so rules can retroactively wrap already-closed nodes
// (open_before) to build left-associative application/infix chains without
// backtracking.
package parser

import (
	"ase/internal/cst"
	"ase/internal/diag"
	"ase/internal/source"
	"ase/internal/token"
)

// initialFuel bounds how many times Peek may be called without an
// intervening Advance before the parser gives up and panics — a dev-mode
// assertion against infinite loops in a malformed or buggy grammar rule,
// never a condition a well-formed grammar should hit in production.
const initialFuel = 256

// Parser holds the token buffer, the in-progress event sink, and recovery
// bookkeeping. The grammar itself lives in decl.go/expr.go/pat.go as methods
// on *Parser.
type Parser struct {
	toks []token.Token
	pos  int
	fuel int

	sink     *cst.Sink
	reporter diag.Reporter
}

// New creates a parser over a fully-lexed token stream (including the
// trailing EOF token) and an event sink to emit into.
func New(toks []token.Token, r diag.Reporter) *Parser {
	return &Parser{toks: toks, fuel: initialFuel, sink: cst.NewSink(), reporter: r}
}

// Parse runs the top-level File rule and folds the resulting event log into
// a Tree.
func Parse(toks []token.Token, r diag.Reporter) *cst.Tree {
	p := New(toks, r)
	p.parseFile()
	return p.sink.Build()
}

// --- token-stream primitives ---

// Peek returns the current lookahead token without consuming it.
func (p *Parser) Peek() token.Token { return p.peekAt(0) }

// Peek2 returns the token one past the current lookahead.
func (p *Parser) Peek2() token.Token { return p.peekAt(1) }

func (p *Parser) peekAt(n int) token.Token {
	p.fuel--
	if p.fuel <= 0 {
		panic("parser: fuel exhausted — grammar rule looped without advancing")
	}
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

// At reports whether the current lookahead has the given kind.
func (p *Parser) At(k token.Kind) bool { return p.Peek().Kind == k }

// AtEOF reports whether the parser has reached the end of the token stream.
func (p *Parser) AtEOF() bool { return p.At(token.EOF) }

// Bump consumes the current token unconditionally and emits it into the
// event log.
func (p *Parser) Bump() token.Token {
	tok := p.Peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.fuel = initialFuel
	p.sink.Advance(tok)
	return tok
}

// Eat consumes the current token if it has kind k, returning true on match.
func (p *Parser) Eat(k token.Kind) bool {
	if !p.At(k) {
		return false
	}
	p.Bump()
	return true
}

// Expect consumes and returns a token of kind k. If the current token does
// not match, it reports diagnostic code with msg at that token's span and
// returns it without consuming it; nothing is added to the tree.
func (p *Parser) Expect(k token.Kind, code diag.Code, msg string) token.Token {
	if tok, ok := p.tryExpect(k); ok {
		return tok
	}
	cur := p.Peek()
	diag.ReportError(p.reporter, code, cur.Span, msg).Emit()
	return cur
}

func (p *Parser) tryExpect(k token.Kind) (token.Token, bool) {
	if p.At(k) {
		return p.Bump(), true
	}
	return token.Token{}, false
}

// --- node-building primitives (proxy to the event sink) ---

func (p *Parser) open() cst.Marker                       { return p.sink.Open() }
func (p *Parser) close(m cst.Marker, k cst.Kind) cst.CloseMark { return p.sink.Close(m, k) }
func (p *Parser) openBefore(c cst.CloseMark) cst.Marker   { return p.sink.OpenBefore(c) }
func (p *Parser) field(name string)                       { p.sink.Field(name) }
func (p *Parser) abandon(m cst.Marker)                    { p.sink.Abandon(m) }

// --- savepoint-based speculation ---

// savepoint is a (token position, event log length) pair; returnAt rewinds
// both, discarding any tokens consumed and events emitted since.
type savepoint struct {
	pos      int
	fuel     int
	sinkLen  int
}

func (p *Parser) savepoint() savepoint {
	return savepoint{pos: p.pos, fuel: p.fuel, sinkLen: p.sink.Len()}
}

func (p *Parser) returnAt(sp savepoint) {
	p.pos = sp.pos
	p.fuel = sp.fuel
	p.sink.Truncate(sp.sinkLen)
}

// report emits a diagnostic at the current token's span.
func (p *Parser) report(code diag.Code, msg string) {
	diag.ReportError(p.reporter, code, p.Peek().Span, msg).Emit()
}

// reportAt emits a diagnostic at an explicit span.
func (p *Parser) reportAt(code diag.Code, span source.Span, msg string) {
	diag.ReportError(p.reporter, code, span, msg).Emit()
}

// errorNode wraps whatever the current token is into an Error-kind node and
// advances past it, so a rule that fails to recognize anything still
// consumes progress rather than looping.
func (p *Parser) errorNode(kind cst.Kind) cst.CloseMark {
	m := p.open()
	if !p.AtEOF() {
		p.Bump()
	}
	return p.close(m, kind)
}
