package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units [unit]",
	Short: "List units, or the modules of one unit",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if len(args) == 0 {
			for _, unit := range s.engine.Catalog().Units() {
				us, err := s.engine.UnitCompletionStatus(unit)
				if err != nil {
					return err
				}
				fmt.Printf("Unit %d: %d/%d completed (%d%%)\n", us.Unit, us.Completed, us.Total, us.Percentage)
			}
			return nil
		}

		unit, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid unit number %q", args[0])
		}
		modules, err := s.engine.ModulesByUnit(unit)
		if err != nil {
			return err
		}
		if len(modules) == 0 {
			return fmt.Errorf("no modules in unit %d", unit)
		}

		for _, m := range modules {
			done, err := s.engine.IsCompleted(m.ID)
			if err != nil {
				return err
			}
			mark := " "
			if done {
				mark = "x"
			}
			fmt.Printf("[%s] %s (%s)\n", mark, m.Name, m.ID)
		}
		return nil
	},
}
