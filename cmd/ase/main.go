package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ase/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ase",
	Short: "Incremental analysis engine for the ase surface language",
	Long:  `ase is a query-driven compiler front end: lexer, parser, name resolver, and HIR lowerer, exposed as one CLI.`,
}

// main wires every subcommand onto the root, installs a panic hook so a bug
// in one of the passes reports a backtrace instead of a raw Go crash dump,
// and runs the command tree.
func main() {
	defer panicHook()

	rootCmd.Version = version.Version

	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 200, "maximum number of diagnostics to collect per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func panicHook() {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "ase: internal error: %v\n\n%s\n", r, debug.Stack())
		fmt.Fprintln(os.Stderr, "this is a bug in ase itself; please file an issue with the command you ran and the input that triggered it")
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command, out *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
