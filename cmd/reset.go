package cmd

import (
	"fmt"

	"github.com/smehra/lingo/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to erase progress without --force")
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.engine.Reset(); err != nil {
			return err
		}

		ctx := cmd.Context()
		seq, err := s.repo.AppendCompletion(ctx, store.CompletionEventData{
			Action:    store.ActionReset,
			SessionID: s.id,
		})
		if err != nil {
			return err
		}
		if err := s.persist(ctx, seq); err != nil {
			return err
		}

		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm erasing all progress")
}
