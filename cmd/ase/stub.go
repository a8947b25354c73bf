package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename --file PATH --line N --col N --to NAME",
	Short: "Rename a binding across a file (not yet implemented)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return fmt.Errorf("rename: not yet implemented")
	},
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search declarations and references across a project (not yet implemented)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return fmt.Errorf("search: not yet implemented")
	},
}
