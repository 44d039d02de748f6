package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ishara/quizdeck/internal/config"
	"github.com/ishara/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your quiz averages",
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

		stats, err := st.Results().Averages(cmd.Context(), cfg.UserID, cfg.Subject, cfg.Difficulty)
		if err != nil {
			return err
		}

		fmt.Printf("Stats for %s — %s / %s\n\n", cfg.UserID, cfg.Subject, cfg.Difficulty)
		if stats.TotalQuizzes == 0 {
			fmt.Println("No quizzes yet.")
			return nil
		}

		fmt.Printf("  Quizzes taken:    %d\n", stats.TotalQuizzes)
		fmt.Printf("  Average score:    %.1f\n", stats.AverageScore)
		fmt.Printf("  Highest score:    %d\n", stats.HighestScore)
		fmt.Printf("  Lowest score:     %d\n", stats.LowestScore)
		fmt.Printf("  Correct answers:  %d (%.1f per quiz)\n", stats.TotalCorrectAnswers, stats.AverageCorrectAnswers)
		fmt.Printf("  Time spent:       %s (%.0fs per quiz)\n",
			(time.Duration(stats.TotalDuration) * time.Millisecond).Round(time.Second),
			stats.AverageDuration/1000)
		return nil
	},
}
