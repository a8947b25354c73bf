package intern

import (
	"sync"
	"testing"
)

// Базовые тесты хэш-консинга для строкового домена

func TestTable_InternDedup(t *testing.T) {
	tbl := NewTable[string]()

	id1 := tbl.Intern("foo")
	id2 := tbl.Intern("foo")
	if id1 != id2 {
		t.Errorf("Intern должен возвращать одинаковые ID для одинаковых значений: %d != %d", id1, id2)
	}

	id3 := tbl.Intern("bar")
	if id3 == id1 {
		t.Error("разные значения не должны получать один ID")
	}

	if v, ok := tbl.Lookup(id1); !ok || v != "foo" {
		t.Errorf("Lookup вернул неверное значение: %q, ok=%v", v, ok)
	}
}

func TestTable_StructKey(t *testing.T) {
	tbl := NewTable[Key]()

	k1 := Key{Tag: 1, A: 5, B: 6}
	k2 := Key{Tag: 1, A: 5, B: 6}
	k3 := Key{Tag: 1, A: 5, B: 7}

	if tbl.Intern(k1) != tbl.Intern(k2) {
		t.Error("structurally equal keys must intern to the same ID")
	}
	if tbl.Intern(k1) == tbl.Intern(k3) {
		t.Error("structurally different keys must not collide")
	}
}

func TestTable_LookupMissing(t *testing.T) {
	tbl := NewTable[string]()
	if _, ok := tbl.Lookup(ID(999)); ok {
		t.Error("несуществующий ID должен возвращать ok=false")
	}
}

func TestTable_ConcurrentIntern(t *testing.T) {
	tbl := NewTable[string]()
	var wg sync.WaitGroup
	ids := make([]ID, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = tbl.Intern("shared")
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		if id != ids[0] {
			t.Fatal("concurrent Intern of the same value produced divergent IDs")
		}
	}
}

func TestInterner_NamesAndArgs(t *testing.T) {
	in := New()

	a := in.InternName("foo")
	b := in.InternName("foo")
	if a != b {
		t.Error("InternName должен дедуплицировать одинаковые имена")
	}
	if s, ok := in.LookupName(a); !ok || s != "foo" {
		t.Errorf("LookupName вернул %q, ok=%v", s, ok)
	}

	argsID := in.InternArgs([]ID{1, 2, 3})
	got, ok := in.LookupArgs(argsID)
	if !ok {
		t.Fatal("LookupArgs вернул ok=false")
	}
	want := []ID{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("round-trip length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("round-trip mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
}
