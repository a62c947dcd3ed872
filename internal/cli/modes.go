package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Switch between date-then-priority and priority-then-date sorting",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		mode := s.mgr.SwitchSortingMode()
		if err := s.save(); err != nil {
			return err
		}
		fmt.Printf("Now sorting tasks %s.\n", mode)
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Switch between standard view and description view",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		mode := s.mgr.SwitchViewMode()
		if err := s.save(); err != nil {
			return err
		}
		fmt.Printf("Switched to %s view.\n", mode)
		return nil
	},
}
