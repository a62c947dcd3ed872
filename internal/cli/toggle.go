package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <task-number>...",
	Short: "Toggle completion status of the selected tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		ids, err := s.mgr.Resolve(args, false)
		if err != nil {
			return err
		}
		count, toggleErr := s.mgr.Toggle(ids...)
		if err := s.save(); err != nil {
			return err
		}
		fmt.Printf("Toggled completion status of %d task(s).\n", count)
		return toggleErr
	},
}
