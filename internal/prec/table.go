// Package prec implements the precedence engine: a per-project table
// mapping operator text to (level, associativity), seeded with defaults and
// extended at parse time by `#infixl`/`#infixr` commands, plus the rotation
// pass that rewrites the parser's flat, left-to-right Infix/Accessor/Ann/Qual
// chain into a properly nested tree.
package prec

import "sync"

// Assoc is an operator's associativity.
type Assoc uint8

const (
	AssocLeft Assoc = iota
	AssocRight
)

// Entry is one operator's resolved precedence.
type Entry struct {
	Level int
	Assoc Assoc
}

// defaultTable seeds every project with the conventional numeric/logical/
// comparison ladder. Higher Level binds tighter. User `#infixl`/`#infixr`
// commands may override any entry, including these defaults.
var defaultTable = map[string]Entry{
	"||": {Level: 2, Assoc: AssocLeft},
	"&&": {Level: 3, Assoc: AssocLeft},
	"==": {Level: 4, Assoc: AssocLeft},
	"!=": {Level: 4, Assoc: AssocLeft},
	"<":  {Level: 5, Assoc: AssocLeft},
	"<=": {Level: 5, Assoc: AssocLeft},
	">":  {Level: 5, Assoc: AssocLeft},
	">=": {Level: 5, Assoc: AssocLeft},
	"|":  {Level: 6, Assoc: AssocLeft},
	"^":  {Level: 7, Assoc: AssocLeft},
	"&":  {Level: 8, Assoc: AssocLeft},
	"+":  {Level: 10, Assoc: AssocLeft},
	"-":  {Level: 10, Assoc: AssocLeft},
	"*":  {Level: 11, Assoc: AssocLeft},
	"/":  {Level: 11, Assoc: AssocLeft},
	"%":  {Level: 11, Assoc: AssocLeft},
}

// fallbackLevel is assigned to an operator the table has never seen. It
// sits between `&` (8) and the additive operators (10): an undeclared
// operator binds tighter than the logical, comparison and bitwise defaults,
// looser than arithmetic and accessor, and tighter than ann/qual, so
// `a.b <+> c` parses as `(a.b) <+> c` without a user declaration.
const fallbackLevel = 9

// Table is a project-scoped, mutable precedence table. The zero value is
// unusable; use NewTable.
type Table struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	declared map[string]bool // set only by an explicit #infixl/#infixr, not by defaultTable seeding
}

// NewTable creates a Table seeded with the default operator ladder.
func NewTable() *Table {
	t := &Table{
		entries:  make(map[string]Entry, len(defaultTable)),
		declared: make(map[string]bool),
	}
	for op, e := range defaultTable {
		t.entries[op] = e
	}
	return t
}

// Lookup returns the resolved precedence for an operator's text, falling
// back to fallbackLevel/AssocLeft for an operator nothing has declared.
func (t *Table) Lookup(op string) Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e, ok := t.entries[op]; ok {
		return e
	}
	return Entry{Level: fallbackLevel, Assoc: AssocLeft}
}

// Declared reports whether op has an explicit entry (default or
// user-declared), distinguishing it from one resolved via fallbackLevel.
func (t *Table) Declared(op string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.entries[op]
	return ok
}

// Set installs or overrides an operator's precedence from an explicit
// #infixl/#infixr command. Returns false if op was already declared by an
// earlier command in the same project — the caller reports
// SynDuplicatePrecedence in that case. Overriding a builtin default (never
// previously declared by a command) is allowed and returns true.
func (t *Table) Set(op string, level int, assoc Assoc) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	wasDeclared := t.declared[op]
	t.entries[op] = Entry{Level: level, Assoc: assoc}
	t.declared[op] = true
	return !wasDeclared
}
