package project

import (
	"testing"

	"ase/internal/diag"
	"ase/internal/source"
)

func TestVFS_AddPackageIdempotent(t *testing.T) {
	vfs := NewVFS()
	a := vfs.AddPackage("core", "/tmp/core")
	b := vfs.AddPackage("core", "/tmp/core")
	if a != b {
		t.Fatalf("registering the same package name twice should return the same ID: %d != %d", a, b)
	}
}

func TestVFS_AddFileAndLookup(t *testing.T) {
	vfs := NewVFS()
	pkg := vfs.AddPackage("core", "/tmp/core")
	mod := vfs.AddModule(pkg, "Collections.List")
	fset := source.NewFileSet()

	id := vfs.AddFile(mod, "/tmp/core/list.ase", fset, []byte("type List;"))
	got, ok := vfs.FileByPath("/tmp/core/list.ase")
	if !ok || got != id {
		t.Fatalf("FileByPath round-trip failed: got %d ok=%v want %d", got, ok, id)
	}

	m, ok := vfs.Module(mod)
	if !ok || len(m.Files) != 1 || m.Files[0] != id {
		t.Fatalf("module did not record its file: %+v", m)
	}
}

func TestResolveImport_SelfImportRejected(t *testing.T) {
	vfs := NewVFS()
	pkg := vfs.AddPackage("core", "/tmp")
	mod := vfs.AddModule(pkg, "A")

	bag := diag.NewBag(10)
	r := diag.BagReporter{Bag: bag}
	_, ok := ResolveImport(vfs, mod, ModuleRef{Package: pkg, Path: "A"}, source.Span{}, r)
	if ok {
		t.Fatal("self-import should not resolve")
	}
	if !bag.HasErrors() {
		t.Fatal("self-import should report a diagnostic")
	}
}

func TestDetectCycles_FindsTwoModuleCycle(t *testing.T) {
	vfs := NewVFS()
	pkg := vfs.AddPackage("core", "/tmp")
	a := vfs.AddModule(pkg, "A")
	b := vfs.AddModule(pkg, "B")
	vfs.AddImport(a, ModuleRef{Package: pkg, Path: "B"})
	vfs.AddImport(b, ModuleRef{Package: pkg, Path: "A"})

	bag := diag.NewBag(10)
	r := diag.BagReporter{Bag: bag}
	cyclic := DetectCycles(vfs, r)
	if len(cyclic) == 0 {
		t.Fatal("expected at least one cyclic module reported")
	}
	if !bag.HasErrors() {
		t.Fatal("expected ProjImportCycle diagnostic")
	}
}
