package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Recommend the next module to attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		m, err := s.engine.NextRecommendedModule()
		if err != nil {
			return err
		}
		if m == nil {
			fmt.Println("Nothing to recommend: everything reachable is completed.")
			return nil
		}

		fmt.Printf("Next up: %s (%s), unit %d\n", m.Name, m.ID, m.Unit)
		if m.Description != "" {
			fmt.Println(m.Description)
		}
		return nil
	},
}
