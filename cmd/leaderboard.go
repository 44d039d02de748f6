package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ishara/quizdeck/internal/config"
	"github.com/ishara/quizdeck/internal/store"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the score ranking for your difficulty",
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
		entries, err := st.Results().Leaderboard(cmd.Context(), cfg.Subject, cfg.Difficulty, limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No scores yet for this subject and difficulty.")
			return nil
		}

		fmt.Printf("Leaderboard — %s · %s\n\n", cfg.Subject, cfg.Difficulty)
		fmt.Printf("  %-4s %-20s %10s %8s\n", "#", "User", "Score", "Quizzes")
		for i, e := range entries {
			marker := " "
			if e.UserID == cfg.UserID {
				marker = "*"
			}
			fmt.Printf("%s %-4d %-20s %10d %8d\n", marker, i+1, e.UserID, e.TotalScore, e.QuizCount)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().Int("limit", 10, "How many users to rank")
}
