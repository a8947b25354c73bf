package intern

// Key is the canonical hash-consing shape for a structural HIR value: a
// discriminant tag plus up to four operand IDs (into the same or another
// domain's table). Fixed arity keeps Key comparable — and therefore usable
// directly as a Go map key — at the cost of needing an auxiliary table for
// the rare variadic shape (see ArgsTable below).
type Key struct {
	Tag uint16
	A   ID
	B   ID
	C   ID
	D   ID
}

// NameID, TypeID, ExprID, ValueID, PatternID, StmtID, TopLevelID, and
// AttributeID are distinctly-typed handles over the same underlying ID
// space, one per HIR shape domain, so a TypeID and an ExprID that happen to
// carry the same numeric value are never interchangeable at compile time.
type (
	NameID      ID
	TypeID      ID
	ExprID      ID
	ValueID     ID
	PatternID   ID
	StmtID      ID
	TopLevelID  ID
	AttributeID ID
)

// Interner aggregates one hash-consing table per HIR shape domain. A single
// Interner is shared for the lifetime of a compilation session; nothing is
// ever evicted, matching the global-interner lifecycle used for source text
// (internal/source.Interner) and tree nodes (internal/cst.Tree).
type Interner struct {
	Names      *Table[string]
	Types      *Table[Key]
	Exprs      *Table[Key]
	Values     *Table[Key]
	Patterns   *Table[Key]
	Stmts      *Table[Key]
	TopLevels  *Table[Key]
	Attributes *Table[Key]

	// argLists backs the rare shape whose operand count exceeds Key's fixed
	// arity (e.g. an n-ary application spine, a record literal's field
	// list). Interned once per distinct slice so repeated argument lists
	// collapse to the same ArgsID.
	argLists *Table[string]
}

// New creates an empty Interner with all domain tables initialized.
func New() *Interner {
	return &Interner{
		Names:      NewTable[string](),
		Types:      NewTable[Key](),
		Exprs:      NewTable[Key](),
		Values:     NewTable[Key](),
		Patterns:   NewTable[Key](),
		Stmts:      NewTable[Key](),
		TopLevels:  NewTable[Key](),
		Attributes: NewTable[Key](),
		argLists:   NewTable[string](),
	}
}

// InternName hash-conses an identifier's text.
func (in *Interner) InternName(s string) NameID { return NameID(in.Names.Intern(s)) }

// LookupName resolves a previously interned identifier's text.
func (in *Interner) LookupName(id NameID) (string, bool) { return in.Names.Lookup(ID(id)) }

// ArgsID is the handle for a variadic operand list interned via InternArgs.
type ArgsID ID

// InternArgs hash-conses a variadic ID list by its encoded form, for shapes
// that don't fit Key's four fixed operand slots.
func (in *Interner) InternArgs(ids []ID) ArgsID {
	return ArgsID(in.argLists.Intern(encodeArgs(ids)))
}

// LookupArgs decodes a previously interned operand list.
func (in *Interner) LookupArgs(id ArgsID) ([]ID, bool) {
	s, ok := in.argLists.Lookup(ID(id))
	if !ok {
		return nil, false
	}
	return decodeArgs(s), true
}

func encodeArgs(ids []ID) string {
	buf := make([]byte, 0, len(ids)*4)
	for _, id := range ids {
		buf = append(buf, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	}
	return string(buf)
}

func decodeArgs(s string) []ID {
	if len(s)%4 != 0 {
		return nil
	}
	out := make([]ID, len(s)/4)
	for i := range out {
		b := s[i*4 : i*4+4]
		out[i] = ID(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
	}
	return out
}
