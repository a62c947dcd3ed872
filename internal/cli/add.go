package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/valdemar/taskman/internal/task"
)

var (
	addTitle       string
	addDue         string
	addPriority    string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task to the list",
	Long: `Add a task. The due date accepts 'today', 'tomorrow', a number of
days from now, or a literal DD/MM/YYYY date (year optional). Priority
accepts h/m/l or the full words. Invalid input never loses the task:
it is added with default attributes and a warning instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		res := task.New(addTitle, addDue, addPriority, addDescription, s.cfg.Limits())
		if res.Defaulted {
			log.Warn(res.Reason)
		}

		report := s.mgr.Add(res.Task)
		for _, rej := range report.Rejected {
			log.Warn("task rejected", "err", rej.Err)
		}

		if err := s.save(); err != nil {
			return err
		}
		if len(report.Added) > 0 {
			fmt.Printf("Added %q due %s.\n", report.Added[0].Title, task.FormatDate(report.Added[0].DueDate))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Task title")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "today", "Due date")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "m", "Priority: h, m, or l")
	addCmd.Flags().StringVar(&addDescription, "desc", "", "Task description")
	addCmd.MarkFlagRequired("title")
}
