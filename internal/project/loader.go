package project

import (
	"os"

	"ase/internal/diag"
	"ase/internal/source"
)

// FileReader abstracts reading a source file's bytes so callers can swap in
// an in-memory VFS for tests without touching the real filesystem. This is
// the `read_file(path) -> Option<string>` contract name resolution depends
// on.
type FileReader interface {
	ReadFile(path string) ([]byte, bool)
}

// OSFileReader reads files from the real filesystem.
type OSFileReader struct{}

// ReadFile implements FileReader over os.ReadFile.
func (OSFileReader) ReadFile(path string) ([]byte, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return b, true
}

// MapFileReader serves fixed contents from memory.
type MapFileReader map[string][]byte

// ReadFile implements FileReader over the map.
func (m MapFileReader) ReadFile(path string) ([]byte, bool) {
	b, ok := m[path]
	return b, ok
}

// ResolveImport looks up ref in vfs, reporting ProjSelfImport if ref names
// the importing module itself, or ProjMissingModule if ref names no
// registered module. On success it also records the edge via AddImport.
func ResolveImport(vfs *VFS, from ModuleID, ref ModuleRef, at source.Span, r diag.Reporter) (ModuleID, bool) {
	fromMod, ok := vfs.Module(from)
	if ok && fromMod.Package == ref.Package && fromMod.Path == ref.Path {
		diag.ReportError(r, diag.ProjSelfImport, at,
			"module \""+ref.Path+"\" imports itself").Emit()
		return 0, false
	}

	to, ok := vfs.ModuleByRef(ref)
	if !ok {
		diag.ReportError(r, diag.ProjMissingModule, at,
			"no module named \""+ref.Path+"\" in this package").Emit()
		return 0, false
	}

	vfs.AddImport(from, ref)
	return to, true
}

// DetectCycles walks every module's import edges and reports
// ProjImportCycle once per distinct cycle found, returning the cyclic
// module IDs it found (deduplicated, one representative per cycle).
func DetectCycles(vfs *VFS, r diag.Reporter) []ModuleID {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	vfs.mu.RLock()
	mods := append([]Module(nil), vfs.modules...)
	vfs.mu.RUnlock()

	color := make(map[ModuleID]int, len(mods))
	var cyclic []ModuleID
	var stack []ModuleID

	var visit func(id ModuleID)
	visit = func(id ModuleID) {
		if color[id] == black {
			return
		}
		if color[id] == gray {
			cyclic = append(cyclic, id)
			diag.ReportError(r, diag.ProjImportCycle, source.Span{},
				"import cycle detected involving module "+refName(vfs, id)).Emit()
			return
		}
		color[id] = gray
		stack = append(stack, id)
		mod, ok := vfs.Module(id)
		if ok {
			for _, imp := range mod.Imports {
				if to, ok := vfs.ModuleByRef(imp); ok {
					visit(to)
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, m := range mods {
		if color[m.ID] == white {
			visit(m.ID)
		}
	}
	return cyclic
}

func refName(vfs *VFS, id ModuleID) string {
	if m, ok := vfs.Module(id); ok {
		return m.Path
	}
	return "<unknown>"
}
