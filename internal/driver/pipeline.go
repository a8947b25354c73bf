// Package driver wires the lexer, parser, precedence engine, resolver, and
// HIR lowerer into the single-file pipeline the CLI drives. Every stage runs
// through an internal/query.Engine under the named queries spec.md §4.6
// documents — source -> cst -> ast -> infix_commands -> ordered_prec ->
// ast_resolved_file -> items/constructors/function_data/constructor_data ->
// hir_file — each feeding the next through a shared *query.Tracker so an
// edit only recomputes what it could actually have changed, and repeated
// commands against the same file (or the interactive CST browser re-querying
// after an edit) reuse prior work.
package driver

import (
	"ase/internal/ast"
	"ase/internal/cst"
	"ase/internal/diag"
	"ase/internal/hir"
	"ase/internal/intern"
	"ase/internal/lexer"
	"ase/internal/parser"
	"ase/internal/prec"
	"ase/internal/project"
	"ase/internal/query"
	"ase/internal/resolve"
	"ase/internal/source"
	"ase/internal/token"
)

// Result is everything a single RunFile call produces, in the shape the CLI
// and the interactive browser consume directly.
type Result struct {
	FileSet  *source.FileSet
	FileID   source.FileID
	Tokens   []token.Token
	Tree     *cst.Tree
	AST      ast.File
	Resolver *resolve.Resolver
	Module   *hir.Module
	Bag      *diag.Bag

	// Items maps every top-level declaration's name to its Decl view, as
	// resolved and precedence-corrected. Constructors does the same for
	// enum variants.
	Items        map[string]ast.Decl
	Constructors map[string]ast.Variant
}

// cstResult bundles the tokens a file lexed to with the CST they parsed
// into: the two are never useful apart, and spec.md §4.6 names only the
// resulting tree ("cst"), not the token stream, as a standalone query.
type cstResult struct {
	Tokens []token.Token
	Tree   *cst.Tree
}

// resolvedFile is ast_resolved_file's output. resolve.Resolver.Resolve
// returns nothing — its findings live in the resolver's own annotation
// table — so the query's real payload is the resolver itself; File is kept
// alongside it so later stages (hir_file) don't need to re-derive it.
type resolvedFile struct {
	File     ast.File
	Resolver *resolve.Resolver
}

// FunctionData is function_data's output: the declaration a name in items
// resolves to, plus its source span. Found is false when name names no
// top-level declaration.
type FunctionData struct {
	Decl  ast.Decl
	Span  source.Span
	Found bool
}

// ConstructorData is constructor_data's output: the enum variant a name in
// constructors resolves to, plus its source span.
type ConstructorData struct {
	Variant ast.Variant
	Span    source.Span
	Found   bool
}

// pipeline carries the per-RunFile state every query stage closes over: the
// loaded file, the diagnostic sink, the precedence table commands mutate,
// and the VFS bookkeeping the resolver needs. Queries are memoized in e
// keyed by path, so a second RunFile against the same path on the same
// Engine reuses every stage a prior call already computed.
type pipeline struct {
	e        *query.Engine
	path     string
	file     *source.File
	reporter diag.Reporter
	table    *prec.Table
	in       *intern.Interner
	vfs      *project.VFS
	module   project.ModuleID
	pkg      project.PackageID
}

func (p *pipeline) key(name string) query.Key {
	return query.Key{Query: name, Arg: p.path}
}

// source is the raw bytes a file was loaded with. It has nothing left to
// compute — the content was already read by source.FileSet.Load — but
// giving it a query entry lets downstream stages depend on it like any
// other query, and lets a caller invalidate a file by re-supplying fresh
// content through query.Invalidate without touching the cache by hand.
func (p *pipeline) source(parent *query.Tracker) []byte {
	return query.Query(p.e, parent, p.key("source"), func(*query.Tracker) []byte {
		return p.file.Content
	})
}

func (p *pipeline) cst(parent *query.Tracker) cstResult {
	return query.Query(p.e, parent, p.key("cst"), func(t *query.Tracker) cstResult {
		p.source(t)
		lx := lexer.New(p.file, lexer.Options{Reporter: p.reporter})
		var toks []token.Token
		for {
			tok := lx.Next()
			toks = append(toks, tok)
			if tok.Kind == token.EOF {
				break
			}
		}
		return cstResult{Tokens: toks, Tree: parser.Parse(toks, p.reporter)}
	})
}

func (p *pipeline) ast(parent *query.Tracker) ast.File {
	return query.Query(p.e, parent, p.key("ast"), func(t *query.Tracker) ast.File {
		c := p.cst(t)
		return ast.NewFile(ast.NewGreenTree(c.Tree, c.Tree.Root()))
	})
}

// infixCommands folds every `#infixl`/`#infixr` declaration into the shared
// precedence table and reports any other `#`-prefixed command as unknown —
// the registry check internal/prec/commands.go leaves to its caller,
// because only the driver knows the full set of commands a file may use.
func (p *pipeline) infixCommands(parent *query.Tracker) ast.File {
	return query.Query(p.e, parent, p.key("infix_commands"), func(t *query.Tracker) ast.File {
		file := p.ast(t)
		prec.ApplyCommands(file, p.table, p.reporter)
		reportUnknownCommands(file, p.reporter)
		return file
	})
}

// orderedPrec rotates every infix/accessor/annotation chain in file into
// its properly precedence-nested shape, once the table reflects whatever
// #infixl/#infixr commands the file declared.
func (p *pipeline) orderedPrec(parent *query.Tracker) ast.File {
	return query.Query(p.e, parent, p.key("ordered_prec"), func(t *query.Tracker) ast.File {
		file := p.infixCommands(t)
		prec.RotateFile(file, p.table)
		return file
	})
}

func (p *pipeline) astResolvedFile(parent *query.Tracker) resolvedFile {
	return query.Query(p.e, parent, p.key("ast_resolved_file"), func(t *query.Tracker) resolvedFile {
		file := p.orderedPrec(t)
		r := resolve.New(resolve.Options{
			Reporter: p.reporter,
			Interner: p.in,
			VFS:      p.vfs,
			Module:   p.module,
			Package:  p.pkg,
		})
		r.Resolve(file)
		return resolvedFile{File: file, Resolver: r}
	})
}

// items maps every top-level declaration's name to its Decl view. Commands,
// use directives, and other unnamed/error nodes carry no binding name and
// are skipped.
func (p *pipeline) items(parent *query.Tracker) map[string]ast.Decl {
	return query.Query(p.e, parent, p.key("items"), func(t *query.Tracker) map[string]ast.Decl {
		rf := p.astResolvedFile(t)
		out := make(map[string]ast.Decl)
		for _, d := range rf.File.Decls() {
			switch d.Kind() {
			case ast.DeclCommand, ast.DeclUse, ast.DeclError:
				continue
			}
			if name, ok := d.Name(); ok {
				out[name.Text] = d
			}
		}
		return out
	})
}

// constructors maps every enum variant's constructor name to its Variant
// view, across every DeclEnum in the file.
func (p *pipeline) constructors(parent *query.Tracker) map[string]ast.Variant {
	return query.Query(p.e, parent, p.key("constructors"), func(t *query.Tracker) map[string]ast.Variant {
		rf := p.astResolvedFile(t)
		out := make(map[string]ast.Variant)
		for _, d := range rf.File.Decls() {
			if d.Kind() != ast.DeclEnum {
				continue
			}
			for _, v := range d.Variants() {
				if name, ok := v.Name(); ok {
					out[name.Text] = v
				}
			}
		}
		return out
	})
}

// functionData looks up one name in items. spec.md §4.6 keys this query on
// a qualified path plus the owning file; a single-file pipeline has no
// qualifier beyond the declaration's own name, so name alone keys the
// lookup within this file's items map.
func (p *pipeline) functionData(parent *query.Tracker, name string) FunctionData {
	key := query.Key{Query: "function_data", Arg: p.path + "::" + name}
	return query.Query(p.e, parent, key, func(t *query.Tracker) FunctionData {
		items := p.items(t)
		decl, ok := items[name]
		if !ok {
			return FunctionData{}
		}
		return FunctionData{Decl: decl, Span: decl.Green.Location(), Found: true}
	})
}

// constructorData looks up one name in constructors.
func (p *pipeline) constructorData(parent *query.Tracker, name string) ConstructorData {
	key := query.Key{Query: "constructor_data", Arg: p.path + "::" + name}
	return query.Query(p.e, parent, key, func(t *query.Tracker) ConstructorData {
		ctors := p.constructors(t)
		v, ok := ctors[name]
		if !ok {
			return ConstructorData{}
		}
		return ConstructorData{Variant: v, Span: v.Green.Location(), Found: true}
	})
}

func (p *pipeline) hirFile(parent *query.Tracker) *hir.Module {
	return query.Query(p.e, parent, p.key("hir_file"), func(t *query.Tracker) *hir.Module {
		rf := p.astResolvedFile(t)
		return hir.NewLowerer(p.in, p.reporter).LowerFile(rf.File)
	})
}

// reportUnknownCommands flags every top-level `#`-prefixed command that
// isn't a recognized precedence declaration. This is the registry check
// internal/prec/commands.go's ApplyCommands defers to its caller: the
// driver is the one place that knows every command a file is allowed to
// use.
func reportUnknownCommands(file ast.File, r diag.Reporter) {
	for _, d := range file.Decls() {
		if d.Kind() != ast.DeclCommand {
			continue
		}
		name, ok := d.Command()
		if !ok {
			continue
		}
		switch name.Text {
		case "infixl", "infixr":
			continue
		default:
			diag.ReportError(r, diag.SynUnknownCommand, name.Span,
				"unknown command \"#"+name.Text+"\"").Emit()
		}
	}
}

// RunFile loads path, runs it through the full query-memoized pipeline —
// lexing, parsing, precedence folding and rotation, name resolution, and
// HIR lowering — and returns every stage's output together with whatever
// diagnostics were raised along the way.
func RunFile(e *query.Engine, in *intern.Interner, path string, maxDiagnostics int) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	vfs := project.NewVFS()
	pkg := vfs.AddPackage("main", fs.BaseDir())
	mod := vfs.AddModule(pkg, path)

	p := &pipeline{
		e:        e,
		path:     path,
		file:     file,
		reporter: reporter,
		table:    prec.NewTable(),
		in:       in,
		vfs:      vfs,
		module:   mod,
		pkg:      pkg,
	}

	c := p.cst(nil)
	rf := p.astResolvedFile(nil)
	module := p.hirFile(nil)
	items := p.items(nil)
	constructors := p.constructors(nil)

	for name := range items {
		p.functionData(nil, name)
	}
	for name := range constructors {
		p.constructorData(nil, name)
	}

	return &Result{
		FileSet:      fs,
		FileID:       fileID,
		Tokens:       c.Tokens,
		Tree:         c.Tree,
		AST:          rf.File,
		Resolver:     rf.Resolver,
		Module:       module,
		Bag:          bag,
		Items:        items,
		Constructors: constructors,
	}, nil
}
