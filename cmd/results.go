package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ishara/quizdeck/internal/config"
	"github.com/ishara/quizdeck/internal/results"
	"github.com/ishara/quizdeck/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List your recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		recent, err := st.Results().ListRecent(cmd.Context(), store.ListOpts{
			UserID:     cfg.UserID,
			Subject:    cfg.Subject,
			Difficulty: cfg.Difficulty,
			Limit:      limit,
		})
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			fmt.Println("No quizzes yet.")
			return nil
		}

		for _, r := range recent {
			scope := r.Subject
			if r.Module != "" {
				scope += "/" + r.Module
			}
			fmt.Printf("%s  %-24s %-6s  %d/%d  %s\n",
				r.CompletedAt.Format("2006-01-02 15:04"),
				scope, r.Difficulty,
				r.Score, r.TotalQuestions,
				results.FormatTimeSpent(r.TimeSpent))
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().Int("limit", 10, "How many results to list")
}
