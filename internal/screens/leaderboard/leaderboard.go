// Package leaderboard shows the per-user score ranking for a difficulty.
package leaderboard

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

const defaultLimit = 10

type loadedMsg struct {
	Entries []results.LeaderboardEntry
	Err     error
}

// LeaderboardScreen ranks users by total score within one subject and
// difficulty.
type LeaderboardScreen struct {
	repo       store.ResultRepo
	userID     string
	subject    string
	difficulty string
	entries    []results.LeaderboardEntry
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen scoped to the given subject and difficulty.
// userID is highlighted in the table when present.
func New(repo store.ResultRepo, userID, subject, difficulty string) *LeaderboardScreen {
	return &LeaderboardScreen{
		repo:       repo,
		userID:     userID,
		subject:    subject,
		difficulty: difficulty,
	}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.repo.Leaderboard(context.Background(), s.subject, s.difficulty, defaultLimit)
		return loadedMsg{Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading leaderboard...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No scores yet for this difficulty.")
	}

	var b strings.Builder
	b.WriteString("\n")

	title := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Top scores — %s · %s", s.subject, s.difficulty))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-4s %-20s %10s %8s", "#", "User", "Score", "Quizzes")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")

	for i, e := range s.entries {
		line := fmt.Sprintf("  %-4d %-20s %10d %8d", i+1, e.UserID, e.TotalScore, e.QuizCount)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.UserID == s.userID {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		} else if i == 0 {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
