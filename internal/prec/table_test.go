package prec

import "testing"

func TestTable_DefaultLookup(t *testing.T) {
	tbl := NewTable()
	e := tbl.Lookup("*")
	if e.Level <= tbl.Lookup("+").Level {
		t.Errorf("* should bind tighter than +, got %d vs %d", e.Level, tbl.Lookup("+").Level)
	}
}

func TestTable_UndeclaredFallsBack(t *testing.T) {
	tbl := NewTable()
	if tbl.Declared("@@@") {
		t.Fatal("undeclared operator reported as declared")
	}
	e := tbl.Lookup("@@@")
	if e.Level != fallbackLevel {
		t.Errorf("expected fallback level %d, got %d", fallbackLevel, e.Level)
	}
}

func TestTable_SetRejectsDuplicateCommandDeclaration(t *testing.T) {
	tbl := NewTable()
	if ok := tbl.Set("@", 10, AssocRight); !ok {
		t.Fatal("first declaration of a new operator must succeed")
	}
	if ok := tbl.Set("@", 20, AssocLeft); ok {
		t.Fatal("second declaration of the same operator must report a conflict")
	}
	if e := tbl.Lookup("@"); e.Level != 20 || e.Assoc != AssocLeft {
		t.Errorf("duplicate Set should still install the latest value, got %+v", e)
	}
}

func TestTable_SetOverridingDefaultSucceeds(t *testing.T) {
	tbl := NewTable()
	if ok := tbl.Set("+", 50, AssocRight); !ok {
		t.Fatal("first explicit command declaration for a default operator must succeed")
	}
}
