package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valdemar/taskman/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the task table",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		fmt.Println(render.Table(s.mgr.Tasks(), s.mgr.ViewMode(), s.cfg.Limits()))
		return nil
	},
}
