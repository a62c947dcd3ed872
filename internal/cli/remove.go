package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCompleted bool

var removeCmd = &cobra.Command{
	Use:   "remove [task-number]...",
	Short: "Remove the selected tasks, or all completed ones",
	Long: `Remove tasks by number, or every completed task with --completed.
Batch removal is one task at a time: it stops at the first number that
no longer resolves, keeping the removals made before it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		if removeCompleted {
			if len(args) > 0 {
				return fmt.Errorf("--completed does not take task numbers")
			}
			count := s.mgr.RemoveCompleted()
			if err := s.save(); err != nil {
				return err
			}
			fmt.Printf("Removed %d completed task(s).\n", count)
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("pass task number(s), or --completed")
		}
		ids, err := s.mgr.Resolve(args, false)
		if err != nil {
			return err
		}
		count, removeErr := s.mgr.Remove(ids...)
		if err := s.save(); err != nil {
			return err
		}
		fmt.Printf("Removed %d task(s).\n", count)
		return removeErr
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeCompleted, "completed", false, "Remove every completed task")
}
