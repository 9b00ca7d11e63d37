package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <module-id>",
	Short: "Show the prerequisite chain leading to a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		path, err := s.engine.ProgressionPath(args[0])
		if err != nil {
			return err
		}

		for i, m := range path {
			done, err := s.engine.IsCompleted(m.ID)
			if err != nil {
				return err
			}
			mark := " "
			if done {
				mark = "x"
			}
			fmt.Printf("%2d. [%s] %s (%s)\n", i+1, mark, m.Name, m.ID)
		}
		return nil
	},
}
