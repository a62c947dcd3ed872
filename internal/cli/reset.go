package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove every task from the list",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		s.mgr.Reset()
		if err := s.save(); err != nil {
			return err
		}
		fmt.Println("Task manager reset.")
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Replace the list with the example preset",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		report := s.mgr.LoadExample(s.cfg.Limits())
		if err := s.save(); err != nil {
			return err
		}
		fmt.Printf("Example tasks loaded (%d).\n", len(report.Added))
		return nil
	},
}
