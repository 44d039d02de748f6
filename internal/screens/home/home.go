// Package home is the main menu: it routes into quizzes, the placement
// test, history, and the leaderboard.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/ishara/quizdeck/internal/results"
	"github.com/ishara/quizdeck/internal/router"
	"github.com/ishara/quizdeck/internal/screen"
	"github.com/ishara/quizdeck/internal/screens/history"
	"github.com/ishara/quizdeck/internal/screens/leaderboard"
	"github.com/ishara/quizdeck/internal/screens/placement"
	quizscreen "github.com/ishara/quizdeck/internal/screens/quiz"
	"github.com/ishara/quizdeck/internal/state"
	"github.com/ishara/quizdeck/internal/ui/components"
	"github.com/ishara/quizdeck/internal/ui/theme"
)

// Options carries the session template and the user-preferences state the
// menu routes from.
type Options struct {
	// Quiz is the session template: each "start" or "resume" pushes a quiz
	// screen built from a copy of it.
	Quiz quizscreen.Options

	User *state.UserState
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	opts Options
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. The resume item is enabled only when a previous
// session survives in the store.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts}

	items := []components.MenuItem{
		{Label: "RESUME QUIZ", Disabled: !h.canResume(), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(h.quizOptions())}
			}
		}},
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				// A fresh start discards any surviving session.
				if h.opts.Quiz.State != nil {
					_ = h.opts.Quiz.State.Clear(context.Background())
				}
				return router.PushScreenMsg{Screen: quizscreen.New(h.quizOptions())}
			}
		}},
		{Label: "PLACEMENT TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: placement.New(placement.Options{
					Source: h.opts.Quiz.Source,
					User:   h.opts.User,
					Log:    h.opts.Quiz.Log,
				})}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(
					h.opts.Quiz.Results, h.opts.Quiz.UserID, reviewScreen)}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				o := h.quizOptions()
				return router.PushScreenMsg{Screen: leaderboard.New(
					o.Results, o.UserID, o.Subject, o.Difficulty)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// canResume reports whether a previous session survives in the store. It is
// re-checked on every update: a quiz completed or cleared after this screen
// was built must not leave a stale resume item.
func (h *HomeScreen) canResume() bool {
	st := h.opts.Quiz.State
	return st != nil && st.Hydrated() && !st.Empty()
}

// quizOptions refreshes the session template with the user's current level,
// so a placement test taken this run applies without a restart.
func (h *HomeScreen) quizOptions() quizscreen.Options {
	opts := h.opts.Quiz
	if h.opts.User != nil {
		if d := h.opts.User.Doc().Difficulty; d != "" {
			opts.Difficulty = d
		}
	}
	return opts
}

// reviewScreen builds the read-only answer walk history hands to the result
// screen.
func reviewScreen(r *results.Result) screen.Screen {
	return quizscreen.NewReview(r)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	h.menu.Items[0].Disabled = !h.canResume()

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("QUIZDECK")
	sections = append(sections, title)

	current := h.quizOptions()
	prefs := fmt.Sprintf("%s · %s", current.Subject, current.Difficulty)
	if current.Module != "" {
		prefs += " · " + current.Module
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(prefs))

	if h.canResume() {
		doc := h.opts.Quiz.State.Doc()
		note := fmt.Sprintf("Unfinished quiz: %d questions, %d answered",
			len(doc.Questions), len(doc.Answers))
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true).
			Render(note))
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
