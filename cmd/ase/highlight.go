package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ase/internal/cst"
	"ase/internal/diagfmt"
	"ase/internal/driver"
	"ase/internal/intern"
	"ase/internal/query"
	"ase/internal/resolve"
	"ase/internal/token"
)

var (
	highlightSemantic bool

	keywordColor = color.New(color.FgMagenta, color.Bold)
	literalColor = color.New(color.FgGreen)
	identColor   = color.New(color.FgWhite)
	opColor      = color.New(color.FgYellow)
	commentColor = color.New(color.FgBlack, color.Bold)
	ctorColor    = color.New(color.FgCyan, color.Bold)
	bindColor    = color.New(color.FgBlue)
)

func init() {
	highlightCmd.Flags().BoolVar(&highlightSemantic, "semantic", false,
		"resolve the file first and color identifiers by what they resolved to")
	highlightCmd.Flags().String("file", "", "source file to highlight")
	_ = highlightCmd.MarkFlagRequired("file")
}

var highlightCmd = &cobra.Command{
	Use:   "highlight --file PATH",
	Short: "Colorize a source file's tokens on the terminal",
	RunE:  runHighlight,
}

func runHighlight(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	in := intern.New()
	result, err := driver.RunFile(query.New(), in, path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}

	useColor := colorEnabled(cmd, os.Stdout)
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !useColor

	var classified map[uint32]resolve.ResKind
	if highlightSemantic {
		classified = classifyIdentifiers(result.Tree, result.Resolver)
	}

	out := cmd.OutOrStdout()
	for _, tok := range result.Tokens {
		if tok.Kind == token.EOF {
			continue
		}
		for _, tr := range tok.Leading {
			if tr.Kind == token.TriviaLineComment || tr.Kind == token.TriviaBlockComment {
				fmt.Fprint(out, commentColor.Sprint(tr.Text))
			} else {
				fmt.Fprint(out, tr.Text)
			}
		}
		fmt.Fprint(out, colorForToken(tok, classified))
	}
	fmt.Fprintln(out)

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: useColor, Context: 1, ShowNotes: true, ShowFixes: true,
		})
	}
	return nil
}

// classifyIdentifiers walks every CST node and, for each one the resolver
// annotated, records the resolution kind keyed by the node's starting byte
// offset — the same offset an identifier token at that use site carries —
// so colorForToken can look a token up by its own span without needing a
// token-to-node mapping.
func classifyIdentifiers(tree *cst.Tree, r *resolve.Resolver) map[uint32]resolve.ResKind {
	out := make(map[uint32]resolve.ResKind)
	if tree == nil || r == nil {
		return out
	}
	for id := cst.NodeID(1); id <= cst.NodeID(tree.Len()); id++ {
		res, ok := r.Resolution(id)
		if !ok {
			continue
		}
		sp := tree.Span(id)
		out[sp.Start] = res.Kind
	}
	return out
}

func colorForToken(tok token.Token, classified map[uint32]resolve.ResKind) string {
	switch {
	case tok.IsKeyword():
		return keywordColor.Sprint(tok.Text)
	case tok.IsLiteral():
		return literalColor.Sprint(tok.Text)
	case tok.IsPunctOrOp():
		return opColor.Sprint(tok.Text)
	case tok.Kind == token.Ident:
		if kind, ok := classified[tok.Span.Start]; ok {
			switch kind {
			case resolve.ResConstructorUse:
				return ctorColor.Sprint(tok.Text)
			case resolve.ResBindingUse:
				return bindColor.Sprint(tok.Text)
			}
		}
		return identColor.Sprint(tok.Text)
	default:
		return tok.Text
	}
}
