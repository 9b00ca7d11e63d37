package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.engine.ProgressionStats()
		if err != nil {
			return err
		}

		fmt.Printf("Modules: %d total, %d completed (%d%%)\n",
			stats.TotalModules, stats.CompletedModules, stats.CompletionPercentage)
		fmt.Printf("Unlocked: %d   Locked: %d\n\n", stats.UnlockedModules, stats.LockedModules)

		fmt.Printf("%4s  %5s  %9s  %4s  %s\n", "Unit", "Total", "Completed", "%", "Done")
		fmt.Println(strings.Repeat("─", 36))
		for _, u := range stats.Units {
			done := ""
			if u.AllCompleted {
				done = "yes"
			}
			fmt.Printf("%4d  %5d  %9d  %3d%%  %s\n", u.Unit, u.Total, u.Completed, u.Percentage, done)
		}
		return nil
	},
}
