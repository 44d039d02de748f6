// Package result renders a completed session: score, weak topics, per-user
// averages, and an entry point into review mode.
package result

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ishara/quizdeck/internal/results"
	"github.com/ishara/quizdeck/internal/router"
	"github.com/ishara/quizdeck/internal/screen"
	"github.com/ishara/quizdeck/internal/store"
	"github.com/ishara/quizdeck/internal/ui/layout"
	"github.com/ishara/quizdeck/internal/ui/theme"
)

// statsLoadedMsg carries the user's running averages for the stats strip.
type statsLoadedMsg struct {
	Stats *results.Stats
}

// ResultScreen displays one stored result.
type ResultScreen struct {
	res    *results.Result
	repo   store.ResultRepo // optional, for the averages strip
	review func(*results.Result) screen.Screen
	stats  *results.Stats
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. review builds the review-mode walk for this
// result; repo, when set, supplies the averages strip.
func New(res *results.Result, repo store.ResultRepo, review func(*results.Result) screen.Screen) *ResultScreen {
	return &ResultScreen{res: res, repo: repo, review: review}
}

func (s *ResultScreen) Init() tea.Cmd {
	if s.repo == nil {
		return nil
	}
	res := s.res
	repo := s.repo
	return func() tea.Msg {
		stats, err := repo.Averages(context.Background(), res.UserID, res.Subject, res.Difficulty)
		if err != nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{Stats: stats}
	}
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "V", Description: "Review answers"},
		{Key: "Enter/Esc", Description: "Done"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.stats = msg.Stats
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "v", "V":
			if s.review != nil {
				rs := s.review(s.res)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: rs} }
			}
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	res := s.res
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	// Score.
	pct := 0.0
	if res.TotalQuestions > 0 {
		pct = float64(res.Score) / float64(res.TotalQuestions) * 100
	}
	scoreStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Success)
	if pct < 50 {
		scoreStyle = scoreStyle.Foreground(theme.Error)
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d / %d  (%.0f%%)", res.Score, res.TotalQuestions, pct)))
	b.WriteString("\n\n")

	// Context line.
	parts := []string{res.Subject}
	if res.Module != "" {
		parts = append(parts, res.Module)
	}
	parts = append(parts, res.Difficulty, results.FormatTimeSpent(res.TimeSpent))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(strings.Join(parts, "  ·  ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Weak topics.
	if len(res.WeakTopics) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topics to revisit")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		for _, topic := range res.WeakTopics {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render("  "+topic)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Running averages.
	if s.stats != nil && s.stats.TotalQuizzes > 0 {
		st := s.stats
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your averages")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		line := fmt.Sprintf("Quizzes: %d    Avg score: %.1f    Best: %d    Worst: %d",
			st.TotalQuizzes, st.AverageScore, st.HighestScore, st.LowestScore)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press V to review your answers"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
