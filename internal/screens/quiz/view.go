package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ishara/quizdeck/internal/question"
	quizm "github.com/ishara/quizdeck/internal/quiz"
	"github.com/ishara/quizdeck/internal/ui/components"
	"github.com/ishara/quizdeck/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.machine == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Opening session...")
	}
	if s.scoring {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Scoring your quiz...")
	}
	if s.review {
		return s.renderReview(width)
	}
	return s.renderLive(width)
}

func (s *QuizScreen) renderLive(width int) string {
	m := s.machine
	var b strings.Builder

	// Info line: position, answered count, countdown.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", m.Index()+1, m.Total()))

	rightText := fmt.Sprintf("answered %d/%d", len(m.Answers()), m.Total())
	if s.opts.QuestionSeconds > 0 && m.Slot(m.Index()) == quizm.SlotReady {
		rightText += fmt.Sprintf("   %d:%02d", s.remaining/60, s.remaining%60)
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(rightText)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	// Progress over answered questions.
	pct := 0.0
	if m.Total() > 0 {
		pct = float64(len(m.Answers())) / float64(m.Total())
	}
	bar := components.NewProgressBar("", pct, false, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	// Navigation panel.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderPanel()))
	b.WriteString("\n\n")

	q := m.Current()
	switch m.Slot(m.Index()) {
	case quizm.SlotFetching:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Generating question..."))
		return b.String()

	case quizm.SlotPlaceholder:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Waiting..."))
		return b.String()

	case quizm.SlotFetchError:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not load this question."))
		if s.status != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(s.status))
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Press R to retry"))
		return b.String()
	}

	// Passage, when the question carries one.
	if q.Passage != "" {
		passage := lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.Passage)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, passage))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	if q.Type.ChoiceLike() {
		b.WriteString(s.renderOptions(width, q))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	if m.Busy() {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Checking your answer..."))
	}

	return b.String()
}

// renderPanel draws the per-question state strip: one cell per slot.
func (s *QuizScreen) renderPanel() string {
	m := s.machine
	cells := make([]string, 0, m.Total())
	answered := make(map[int]bool)
	for _, q := range m.Questions() {
		if _, ok := m.AnswerFor(q.ID); ok {
			answered[q.ID-1] = true
		}
	}

	for i := 0; i < m.Total(); i++ {
		label := fmt.Sprintf("%2d", i+1)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case s.panel && i == s.panelIdx:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Underline(true)
		case i == m.Index():
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case m.Slot(i) == quizm.SlotFetchError:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		case answered[i]:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case m.Slot(i) == quizm.SlotReady:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		cells = append(cells, style.Render(label))
	}
	return strings.Join(cells, " ")
}

func (s *QuizScreen) renderOptions(width int, q *question.Question) string {
	var b strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.choice {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.choice {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		if recorded, ok := s.machine.AnswerFor(q.ID); ok && recorded == opt {
			line += "  ●"
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("\nSelect with 1-4 or arrows + Enter"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderReview(width int) string {
	m := s.machine
	q := m.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", m.Index()+1, m.Total())))
	b.WriteString("\n\n")

	if q.Passage != "" {
		passage := lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.Passage)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, passage))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	submitted, _ := m.AnswerFor(q.ID)

	if q.Type.ChoiceLike() {
		var opts strings.Builder
		for i, opt := range q.Options {
			line := fmt.Sprintf("  %d) %s", i+1, opt)
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			switch {
			case i == q.OptionIndex():
				style = theme.Correct
			case submitted != "" && question.LeadingTokenMatch(opt, submitted):
				style = theme.Incorrect
			}
			opts.WriteString(style.Render(line))
			opts.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))
	} else {
		var lines strings.Builder
		yourAnswer := submitted
		if yourAnswer == "" {
			yourAnswer = "(no answer)"
		}
		verdict := theme.Incorrect.Render("incorrect")
		if q.Correct != nil && *q.Correct {
			verdict = theme.Correct.Render("correct")
		}
		lines.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("Your answer: "+yourAnswer) + "  " + verdict + "\n")
		lines.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Model answer: " + q.Answer))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lines.String()))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

