package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/smehra/lingo/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <progress.json>",
	Short: "Replace progress with a completed-id list from a JSON file",
	Long: `Replaces the completion set wholesale with the IDs found in the given
JSON file (an array of module-id strings). This is a raw replace, not a
merge: the file is treated as the full authoritative set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read progress file: %w", err)
		}
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("decode progress file: %w", err)
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.engine.SetCompletedModules(ids); err != nil {
			return err
		}

		ctx := cmd.Context()
		seq, err := s.repo.AppendCompletion(ctx, store.CompletionEventData{
			Action:    store.ActionReload,
			SessionID: s.id,
		})
		if err != nil {
			return err
		}
		if err := s.persist(ctx, seq); err != nil {
			return err
		}

		fmt.Printf("Imported %d completed modules.\n", len(ids))
		return nil
	},
}
