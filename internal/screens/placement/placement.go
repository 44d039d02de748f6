// Package placement runs the short difficulty-probe quiz that assigns the
// user a starting difficulty.
package placement

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"charm.land/lipgloss/v2"

	"github.com/ishara/quizdeck/internal/question"
	quizm "github.com/ishara/quizdeck/internal/quiz"
	"github.com/ishara/quizdeck/internal/router"
	"github.com/ishara/quizdeck/internal/screen"
	"github.com/ishara/quizdeck/internal/state"
	"github.com/ishara/quizdeck/internal/ui/layout"
	"github.com/ishara/quizdeck/internal/ui/theme"
)

// DefaultProbeCount is the number of difficulty probes served.
const DefaultProbeCount = 5

// DifficultyFor maps a probe score to the assigned difficulty level.
func DifficultyFor(correct, total int) string {
	if total <= 0 {
		return "easy"
	}
	pct := correct * 100 / total
	switch {
	case pct >= 80:
		return "hard"
	case pct >= 50:
		return "medium"
	default:
		return "easy"
	}
}

// Tester is implemented by sources that serve a prepared probe batch and
// assign the level server-side. Sources without it fall back to one-at-a-time
// probes graded locally.
type Tester interface {
	GetDifficultyTest(ctx context.Context) ([]question.Content, error)
	EvaluateDifficultyTest(ctx context.Context, answers map[int]string) (string, error)
}

type probeFetchedMsg struct {
	Index   int
	Content *question.Content
	Err     error
}

type batchMsg struct {
	Contents []question.Content
	Err      error
}

type assignedMsg struct {
	Difficulty string
	Err        error
}

type savedMsg struct{ Err error }

// Options carries the placement screen's collaborators.
type Options struct {
	Source quizm.Source
	User   *state.UserState
	Probes int
	Log    *zap.Logger
}

// PlacementScreen runs the difficulty probes and persists the assigned
// difficulty. With a remote Tester the batch comes down in one request and
// the service assigns the level; otherwise probes are fetched one at a time
// and graded locally.
type PlacementScreen struct {
	opts   Options
	remote Tester

	questions []question.Question
	answers   map[int]string
	index     int
	correct   int
	choice    int

	assigned   string
	fetching   bool
	evaluating bool
	done       bool
	errMsg     string
}

var _ screen.Screen = (*PlacementScreen)(nil)
var _ screen.KeyHintProvider = (*PlacementScreen)(nil)

// New creates a PlacementScreen.
func New(opts Options) *PlacementScreen {
	if opts.Probes <= 0 {
		opts.Probes = DefaultProbeCount
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	s := &PlacementScreen{
		opts:     opts,
		answers:  make(map[int]string),
		fetching: true,
	}
	if t, ok := opts.Source.(Tester); ok {
		s.remote = t
	}
	return s
}

func (s *PlacementScreen) Title() string {
	return "Placement Test"
}

func (s *PlacementScreen) Init() tea.Cmd {
	if s.remote != nil {
		return s.batchCmd()
	}
	return s.fetchCmd(0)
}

func (s *PlacementScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Abort"},
	}
}

func (s *PlacementScreen) fetchCmd(index int) tea.Cmd {
	src := s.opts.Source
	return func() tea.Msg {
		content, err := src.FetchQuestion(context.Background(), quizm.FetchRequest{
			Index: index,
			Type:  question.TypeDifficulty,
		})
		return probeFetchedMsg{Index: index, Content: content, Err: err}
	}
}

func (s *PlacementScreen) batchCmd() tea.Cmd {
	remote := s.remote
	return func() tea.Msg {
		contents, err := remote.GetDifficultyTest(context.Background())
		return batchMsg{Contents: contents, Err: err}
	}
}

func (s *PlacementScreen) evaluateCmd() tea.Cmd {
	remote := s.remote
	answers := s.answers
	return func() tea.Msg {
		level, err := remote.EvaluateDifficultyTest(context.Background(), answers)
		return assignedMsg{Difficulty: level, Err: err}
	}
}

func (s *PlacementScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case probeFetchedMsg:
		return s.handleFetched(msg)
	case batchMsg:
		return s.handleBatch(msg)
	case assignedMsg:
		return s.handleAssigned(msg)
	case savedMsg:
		if msg.Err != nil {
			s.opts.Log.Warn("persist difficulty", zap.Error(msg.Err))
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *PlacementScreen) handleFetched(msg probeFetchedMsg) (screen.Screen, tea.Cmd) {
	s.fetching = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	q := question.Placeholder(msg.Index+1, question.TypeDifficulty)
	q.Fill(*msg.Content)
	s.questions = append(s.questions, q)
	s.choice = 0
	return s, nil
}

func (s *PlacementScreen) handleBatch(msg batchMsg) (screen.Screen, tea.Cmd) {
	s.fetching = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	for i, content := range msg.Contents {
		q := question.Placeholder(i+1, question.TypeDifficulty)
		q.Fill(content)
		s.questions = append(s.questions, q)
	}
	s.opts.Probes = len(s.questions)
	s.choice = 0
	return s, nil
}

// handleAssigned applies the server's verdict, falling back to the local
// threshold when the evaluation call failed.
func (s *PlacementScreen) handleAssigned(msg assignedMsg) (screen.Screen, tea.Cmd) {
	s.evaluating = false
	s.done = true
	if msg.Err != nil {
		s.opts.Log.Warn("evaluate placement", zap.Error(msg.Err))
		s.assigned = DifficultyFor(s.correct, s.opts.Probes)
	} else {
		s.assigned = msg.Difficulty
	}
	return s, s.saveCmd(s.assigned)
}

func (s *PlacementScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.done {
		if key == "enter" || key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
	if s.fetching || s.index >= len(s.questions) {
		return s, nil
	}

	q := s.questions[s.index]
	switch key {
	case "up", "k":
		if s.choice > 0 {
			s.choice--
		}
	case "down", "j":
		if s.choice < len(q.Options)-1 {
			s.choice++
		}
	case "enter":
		return s.answer(q, s.choice)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i < len(q.Options) {
			return s.answer(q, i)
		}
	}
	return s, nil
}

// answer records the selection and moves to the next probe; after the last
// one the level is assigned, server-side when a Tester is wired.
func (s *PlacementScreen) answer(q question.Question, i int) (screen.Screen, tea.Cmd) {
	selected := q.Options[i]
	s.answers[q.ID] = selected
	if i == q.OptionIndex() || question.LeadingTokenMatch(selected, q.Answer) {
		s.correct++
	}

	s.index++
	s.choice = 0
	if s.index < s.opts.Probes {
		if s.remote != nil {
			return s, nil // the whole batch is already here
		}
		s.fetching = true
		return s, s.fetchCmd(s.index)
	}

	if s.remote != nil {
		s.evaluating = true
		return s, s.evaluateCmd()
	}

	s.done = true
	s.assigned = DifficultyFor(s.correct, s.opts.Probes)
	return s, s.saveCmd(s.assigned)
}

func (s *PlacementScreen) saveCmd(difficulty string) tea.Cmd {
	user := s.opts.User
	return func() tea.Msg {
		if user == nil {
			return savedMsg{}
		}
		doc := user.Doc()
		doc.Difficulty = difficulty
		return savedMsg{Err: user.Set(context.Background(), doc)}
	}
}

func (s *PlacementScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s\n\nPress any key to go back.", s.errMsg))
	}
	if s.done {
		return s.renderDone(width)
	}
	if s.evaluating {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n\n  Scoring your placement test...")
	}
	if s.fetching || s.index >= len(s.questions) {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n\n  Preparing your placement question...")
	}
	return s.renderProbe(width)
}

func (s *PlacementScreen) renderProbe(width int) string {
	q := s.questions[s.index]
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Probe %d/%d", s.index+1, s.opts.Probes)))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(minInt(width-8, 72)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	var opts strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.choice {
			prefix = "> "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		opts.WriteString(style.Render(fmt.Sprintf("%s%d) %s", prefix, i+1, opt)))
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))

	return b.String()
}

func (s *PlacementScreen) renderDone(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Success).Bold(true).
		Render("Placement complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("You answered %d of %d correctly.", s.correct, s.opts.Probes)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Your level: %s", s.assigned)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Quizzes will now use this difficulty. Press Enter to continue."))

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
