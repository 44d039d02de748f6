package results

import (
	"fmt"
	"time"

	"github.com/ishara/quizdeck/internal/question"
)

// Result is the permanent record of one completed session, as persisted and
// as loaded back for review.
type Result struct {
	ID             string              `json:"id"`
	UserID         string              `json:"userId"`
	Subject        string              `json:"subject"`
	Module         string              `json:"module,omitempty"`
	Difficulty     string              `json:"difficulty"`
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"totalQuestions"`
	StartedAt      time.Time           `json:"startedAt"`
	CompletedAt    time.Time           `json:"completedAt"`
	TimeSpent      time.Duration       `json:"timeSpent"`
	Questions      []question.Question `json:"questions"`
	Answers        map[int]string      `json:"answers"`
	Feedback       []Feedback          `json:"feedback"`
	WeakTopics     []string            `json:"weakTopics,omitempty"`
}

// Build assembles a Result from a finished session and its evaluation.
// TimeSpent is completion minus start, floored at zero for clock skew.
func Build(userID, subject, module, difficulty string, questions []question.Question, answers map[int]string, ev *Evaluation, startedAt, completedAt time.Time) *Result {
	spent := completedAt.Sub(startedAt)
	if spent < 0 {
		spent = 0
	}
	return &Result{
		UserID:         userID,
		Subject:        subject,
		Module:         module,
		Difficulty:     difficulty,
		Score:          ev.Score,
		TotalQuestions: len(ev.Feedback),
		StartedAt:      startedAt,
		CompletedAt:    completedAt,
		TimeSpent:      spent,
		Questions:      questions,
		Answers:        answers,
		Feedback:       ev.Feedback,
		WeakTopics:     ev.WeakTopics,
	}
}

// FormatTimeSpent renders a duration the way the result screen shows it:
// "45s", "5m 32s", "1h 02m".
func FormatTimeSpent(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
