package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of every module",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Printf("%-20s  %-36s  %4s  %s\n", "ID", "Name", "Unit", "Status")
		fmt.Println(strings.Repeat("─", 78))

		completed, unlocked := 0, 0
		for _, m := range s.engine.Catalog().Modules() {
			done, err := s.engine.IsCompleted(m.ID)
			if err != nil {
				return err
			}
			open, err := s.engine.IsUnlocked(m.ID)
			if err != nil {
				return err
			}

			status := "locked"
			switch {
			case done:
				status = "completed"
				completed++
			case open:
				status = "unlocked"
				unlocked++
			}

			name := m.Name
			if len(name) > 36 {
				name = name[:33] + "..."
			}
			fmt.Printf("%-20s  %-36s  %4d  %s\n", m.ID, name, m.Unit, status)
		}

		fmt.Printf("\n%d completed, %d unlocked\n", completed, unlocked)
		return nil
	},
}
