package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ishara/quizdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the in-progress quiz and stored preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.State()
		if err := repo.ClearBlob(ctx, store.NamespaceQuiz); err != nil {
			return fmt.Errorf("clear quiz state: %w", err)
		}
		if err := repo.ClearBlob(ctx, store.NamespaceUser); err != nil {
			return fmt.Errorf("clear user state: %w", err)
		}

		fmt.Println("In-progress quiz and preferences cleared. Results are kept.")
		return nil
	},
}
