// Package history lists past quiz results and opens them for review.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/ishara/quizdeck/internal/results"
	"github.com/ishara/quizdeck/internal/router"
	"github.com/ishara/quizdeck/internal/screen"
	screenresult "github.com/ishara/quizdeck/internal/screens/result"
	"github.com/ishara/quizdeck/internal/store"
	"github.com/ishara/quizdeck/internal/ui/layout"
	"github.com/ishara/quizdeck/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []*results.Result
	Err     error
}

// HistoryScreen displays the user's recent results.
type HistoryScreen struct {
	repo     store.ResultRepo
	userID   string
	review   func(*results.Result) screen.Screen
	results  []*results.Result
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. review builds the read-only answer walk for a
// selected result.
func New(repo store.ResultRepo, userID string, review func(*results.Result) screen.Screen) *HistoryScreen {
	return &HistoryScreen{
		repo:   repo,
		userID: userID,
		review: review,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		recent, err := s.repo.ListRecent(context.Background(), store.ListOpts{
			UserID: s.userID,
			Limit:  50,
		})
		return historyLoadedMsg{Results: recent, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.results) {
				res := s.results[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: screenresult.New(res, s.repo, s.review),
					}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Take one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, res := range s.results {
		dateStr := res.CompletedAt.Format("Jan 02, 2006")

		scope := res.Subject
		if res.Module != "" {
			scope += " / " + res.Module
		}

		pct := 0
		if res.TotalQuestions > 0 {
			pct = res.Score * 100 / res.TotalQuestions
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-24s  %s  %d/%d (%d%%)  %s",
			prefix, dateStr, scope, res.Difficulty,
			res.Score, res.TotalQuestions, pct,
			results.FormatTimeSpent(res.TimeSpent))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
