package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ase/internal/diagfmt"
	"ase/internal/driver"
	"ase/internal/hir"
	"ase/internal/intern"
	"ase/internal/query"
	"ase/internal/ui"
)

var (
	evalVerbose     bool
	evalInteractive bool
	evalDumpQueries bool
)

func init() {
	evalCmd.Flags().String("file", "", "source file to evaluate")
	_ = evalCmd.MarkFlagRequired("file")
	evalCmd.Flags().BoolVar(&evalVerbose, "verbose", false, "dump the lowered HIR for every top-level declaration")
	evalCmd.Flags().BoolVar(&evalInteractive, "interactive", false, "open an interactive CST/HIR browser")
	evalCmd.Flags().BoolVar(&evalDumpQueries, "dump-queries", false, "write the query engine's dependency graph (msgpack) to stdout")
}

var evalCmd = &cobra.Command{
	Use:   "eval --file PATH",
	Short: "Resolve and lower a source file, reporting diagnostics",
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	engine := query.New()
	in := intern.New()
	result, err := driver.RunFile(engine, in, path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	if evalInteractive {
		model := ui.NewBrowserModel(path, result.AST, result.Module, in)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("eval --interactive: %w", err)
		}
		return nil
	}

	useColor := colorEnabled(cmd, os.Stdout)
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: useColor, Context: 2, ShowNotes: true, ShowFixes: true,
		})
	}

	if !quiet {
		summaryColor := color.New(color.FgGreen, color.Bold)
		if result.Bag.HasErrors() {
			summaryColor = color.New(color.FgRed, color.Bold)
		}
		fmt.Fprintln(cmd.OutOrStdout(), summaryColor.Sprintf(
			"%s: %d top-level declaration(s) lowered, %d diagnostic(s)",
			path, len(result.Module.TopLevels), result.Bag.Len()))
	}

	if evalVerbose {
		out := cmd.OutOrStdout()
		printer := hir.NewPrinter(out, in)
		for _, id := range result.Module.TopLevels {
			printer.PrintTopLevel(id)
			fmt.Fprintln(out)
		}
	}

	if evalDumpQueries {
		data, err := engine.DumpMsgpack()
		if err != nil {
			return fmt.Errorf("eval --dump-queries: %w", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("eval --dump-queries: %w", err)
		}
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("eval: %s failed to compile", path)
	}
	return nil
}
