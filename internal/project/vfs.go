// Package project implements the virtual file system and module graph:
// packages group modules, modules group files, and every file/module/
// package has a stable ref usable as a query engine key (see internal/query).
package project

import (
	"sync"

	"ase/internal/source"
)

// PackageID, ModuleID, and FileID are stable handles into a VFS, assigned in
// registration order. The zero value means "absent".
type (
	PackageID uint32
	ModuleID  uint32
	FileID    uint32
)

// ModuleRef names a module within a package by its dotted path (e.g.
// "Collections.List"). It is the unit name resolution and the query engine
// key off of.
type ModuleRef struct {
	Package PackageID
	Path    string
}

// VfsFile is one `.ase` source file tracked by the VFS: its path, owning
// module, and the interned source file it was read into.
type VfsFile struct {
	ID     FileID
	Module ModuleID
	Path   string
	Source source.FileID
}

// Module groups the files that together define one ModuleRef, plus the set
// of other modules it directly imports (tracked for cycle detection).
type Module struct {
	ID      ModuleID
	Package PackageID
	Path    string
	Files   []FileID
	Imports []ModuleRef
}

// Package is a named root of modules, matching one on-disk manifest.
type Package struct {
	ID      PackageID
	Name    string
	Root    string
	Modules []ModuleID
}

// VFS is the project-wide registry of packages, modules, and files. All
// lookups are read-mostly after the initial build, but registration itself
// is safe for concurrent callers (the driver may add files from multiple
// goroutines when walking a directory tree).
type VFS struct {
	mu sync.RWMutex

	packages []Package
	modules  []Module
	files    []VfsFile

	byPackageName map[string]PackageID
	byModuleRef   map[ModuleRef]ModuleID
	byFilePath    map[string]FileID
}

// NewVFS creates an empty virtual file system.
func NewVFS() *VFS {
	return &VFS{
		byPackageName: make(map[string]PackageID),
		byModuleRef:   make(map[ModuleRef]ModuleID),
		byFilePath:    make(map[string]FileID),
	}
}

// AddPackage registers a new package root, or returns the existing one if
// name was already registered.
func (v *VFS) AddPackage(name, root string) PackageID {
	v.mu.Lock()
	defer v.mu.Unlock()
	if id, ok := v.byPackageName[name]; ok {
		return id
	}
	id := PackageID(len(v.packages) + 1)
	v.packages = append(v.packages, Package{ID: id, Name: name, Root: root})
	v.byPackageName[name] = id
	return id
}

// AddModule registers a module path within pkg, or returns the existing one.
func (v *VFS) AddModule(pkg PackageID, path string) ModuleID {
	v.mu.Lock()
	defer v.mu.Unlock()
	ref := ModuleRef{Package: pkg, Path: path}
	if id, ok := v.byModuleRef[ref]; ok {
		return id
	}
	id := ModuleID(len(v.modules) + 1)
	v.modules = append(v.modules, Module{ID: id, Package: pkg, Path: path})
	v.byModuleRef[ref] = id
	if pi := v.packageIndex(pkg); pi >= 0 {
		v.packages[pi].Modules = append(v.packages[pi].Modules, id)
	}
	return id
}

// AddFile registers a file within module at path, interning its contents
// into fset, and returns its FileID. Returns the existing FileID if path
// was already registered.
func (v *VFS) AddFile(mod ModuleID, path string, fset *source.FileSet, contents []byte) FileID {
	v.mu.Lock()
	defer v.mu.Unlock()
	if id, ok := v.byFilePath[path]; ok {
		return id
	}
	srcID := fset.Add(path, contents, 0)
	id := FileID(len(v.files) + 1)
	v.files = append(v.files, VfsFile{ID: id, Module: mod, Path: path, Source: srcID})
	v.byFilePath[path] = id
	if mi := v.moduleIndex(mod); mi >= 0 {
		v.modules[mi].Files = append(v.modules[mi].Files, id)
	}
	return id
}

// AddImport records that mod imports the module named by ref. Cycle
// detection is the project loader's job (see loader.go), not the VFS's.
func (v *VFS) AddImport(mod ModuleID, ref ModuleRef) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if mi := v.moduleIndex(mod); mi >= 0 {
		v.modules[mi].Imports = append(v.modules[mi].Imports, ref)
	}
}

// Package returns the package registered under id, or false if absent.
func (v *VFS) Package(id PackageID) (Package, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if i := v.packageIndex(id); i >= 0 {
		return v.packages[i], true
	}
	return Package{}, false
}

// Module returns the module registered under id, or false if absent.
func (v *VFS) Module(id ModuleID) (Module, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if i := v.moduleIndex(id); i >= 0 {
		return v.modules[i], true
	}
	return Module{}, false
}

// File returns the file registered under id, or false if absent.
func (v *VFS) File(id FileID) (VfsFile, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if int(id) < 1 || int(id) > len(v.files) {
		return VfsFile{}, false
	}
	return v.files[id-1], true
}

// ModuleByRef resolves a ModuleRef to its ModuleID, the inverse of
// AddModule — ResolveImport (called by the resolver's visitUse) uses it to
// turn an import path into a concrete module to depend on.
func (v *VFS) ModuleByRef(ref ModuleRef) (ModuleID, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	id, ok := v.byModuleRef[ref]
	return id, ok
}

// FileByPath resolves a file system path to its FileID.
func (v *VFS) FileByPath(path string) (FileID, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	id, ok := v.byFilePath[path]
	return id, ok
}

func (v *VFS) packageIndex(id PackageID) int {
	if int(id) < 1 || int(id) > len(v.packages) {
		return -1
	}
	return int(id) - 1
}

func (v *VFS) moduleIndex(id ModuleID) int {
	if int(id) < 1 || int(id) > len(v.modules) {
		return -1
	}
	return int(id) - 1
}
