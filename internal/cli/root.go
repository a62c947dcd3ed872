// Package cli implements the non-interactive command surface. Each
// command loads the savefile, applies one engine operation, and saves.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/valdemar/taskman/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "taskman",
	Short:   "A to-do list manager for the terminal",
	Long:    `Taskman keeps a single to-do list: add, edit, toggle, sort, and remove tasks from the command line, or run it without arguments for the interactive session.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(
		addCmd,
		listCmd,
		toggleCmd,
		editCmd,
		removeCmd,
		sortCmd,
		viewCmd,
		resetCmd,
		exampleCmd,
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
