package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valdemar/taskman/internal/task"
)

var (
	editTitle       string
	editDue         string
	editPriority    string
	editDescription string
)

var editCmd = &cobra.Command{
	Use:   "edit <task-number>",
	Short: "Edit the selected task",
	Long: `Edit a task. Only the fields given as flags change; everything else
keeps its current value. The due date additionally accepts '+N' and
'-N' to shift the task's current due date by N days. Completed tasks
keep their due date regardless of input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		ids, err := s.mgr.Resolve(args, true)
		if err != nil {
			return err
		}

		edit := task.Edit{
			Title:       editTitle,
			Due:         editDue,
			Priority:    editPriority,
			Description: editDescription,
		}
		if err := s.mgr.Update(ids[0], edit, s.cfg.Limits()); err != nil {
			return err
		}

		if err := s.save(); err != nil {
			return err
		}
		fmt.Printf("Updated task %s.\n", args[0])
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDue, "due", "d", "", "New due date (also +N/-N days)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority: h, m, or l")
	editCmd.Flags().StringVar(&editDescription, "desc", "", "New description")
}
