package cmd

import (
	"fmt"

	"github.com/smehra/lingo/internal/store"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <module-id>",
	Short: "Mark a module as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		done, err := s.engine.IsCompleted(id)
		if err != nil {
			return err
		}
		if done {
			fmt.Printf("%s is already completed.\n", id)
			return nil
		}

		newlyUnlocked, err := s.engine.CompleteModule(id)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		seq, err := s.repo.AppendCompletion(ctx, store.CompletionEventData{
			Action:        store.ActionComplete,
			ModuleID:      id,
			NewlyUnlocked: len(newlyUnlocked),
			SessionID:     s.id,
		})
		if err != nil {
			return err
		}
		if err := s.persist(ctx, seq); err != nil {
			return err
		}

		fmt.Printf("Completed %s.\n", id)
		for _, m := range newlyUnlocked {
			fmt.Printf("Unlocked: %s (%s)\n", m.Name, m.ID)
		}
		return nil
	},
}
