// Package ui implements the interactive terminal views the CLI drives,
// built on bubbletea/bubbles/lipgloss the way the teacher's own internal/ui
// package builds its build-progress view on the same stack.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ase/internal/ast"
	"ase/internal/hir"
	"ase/internal/intern"
	"ase/internal/source"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	viewportStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var declKindLabel = map[ast.DeclKind]string{
	ast.DeclError:     "error",
	ast.DeclUse:       "use",
	ast.DeclType:      "type",
	ast.DeclRecord:    "record",
	ast.DeclEnum:      "enum",
	ast.DeclTrait:     "trait",
	ast.DeclClass:     "class",
	ast.DeclInstance:  "instance",
	ast.DeclSignature: "signature",
	ast.DeclAssign:    "assign",
	ast.DeclCommand:   "command",
}

// declItem adapts one top-level ast.Decl to bubbles/list's Item interface.
type declItem struct {
	decl  ast.Decl
	label string
	kind  string
}

func (i declItem) Title() string       { return i.label }
func (i declItem) Description() string { return i.kind }
func (i declItem) FilterValue() string { return i.label }

// BrowserModel is the interactive CST/HIR browser `eval --interactive`
// drives: a scrollable list of the file's top-level declarations on the
// left behavior, a dumped-HIR preview of the selected one on the right.
type BrowserModel struct {
	path     string
	list     list.Model
	preview  viewport.Model
	module   *hir.Module
	in       *intern.Interner
	decls    []ast.Decl
	bySpan   map[source.Span]intern.TopLevelID
	ready    bool
}

// NewBrowserModel builds a browser over file's top-level declarations. A
// declaration's preview is found by matching its own source span against
// module.TopLevelSpans: that map records the span of the declaration that
// first produced each top-level (for a fused binding group, the first
// signature or assign in the group), so later equations of an already-fused
// group correctly report that they have no top-level of their own.
func NewBrowserModel(path string, file ast.File, module *hir.Module, in *intern.Interner) BrowserModel {
	decls := file.Decls()
	items := make([]list.Item, 0, len(decls))
	for _, d := range decls {
		label := "<unnamed>"
		if nm, ok := d.Name(); ok {
			label = nm.Text
		}
		kind := declKindLabel[d.Kind()]
		items = append(items, declItem{decl: d, label: label, kind: kind})
	}

	bySpan := make(map[source.Span]intern.TopLevelID, len(module.TopLevels))
	for _, id := range module.TopLevels {
		bySpan[module.TopLevelSpans[id]] = id
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = path
	l.Styles.Title = titleStyle

	return BrowserModel{
		path:    path,
		list:    l,
		preview: viewport.New(0, 0),
		module:  module,
		bySpan:  bySpan,
		in:      in,
		decls:   decls,
	}
}

func (m BrowserModel) Init() tea.Cmd { return nil }

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		listWidth := msg.Width / 2
		m.list.SetSize(listWidth, msg.Height-4)
		m.preview.Width = msg.Width - listWidth - 4
		m.preview.Height = msg.Height - 4
		m.ready = true
		m.refreshPreview()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.refreshPreview()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshPreview()
	return m, cmd
}

func (m *BrowserModel) refreshPreview() {
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.decls) {
		m.preview.SetContent("(nothing selected)")
		return
	}
	id, ok := m.bySpan[m.decls[idx].Green.Location()]
	if !ok {
		m.preview.SetContent("(fused into an earlier binding group's clause — select the group's first declaration)")
		return
	}
	var buf strings.Builder
	hir.NewPrinter(&buf, m.in).PrintTopLevel(id)
	m.preview.SetContent(buf.String())
}

func (m BrowserModel) View() string {
	if !m.ready {
		return "loading…"
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), viewportStyle.Render(m.preview.View()))
	help := helpStyle.Render(fmt.Sprintf("%d declarations — arrows to move, enter to inspect, q to quit", len(m.decls)))
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}
