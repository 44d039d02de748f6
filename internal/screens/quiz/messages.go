package quiz

import (
	"time"

	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/results"
)

// startedMsg is sent when the server-side session is open (or no opener is
// configured) and the machine can start or resume.
type startedMsg struct {
	WeakTopics []string
	Err        error
}

// fetchDoneMsg carries the outcome of one question fetch.
type fetchDoneMsg struct {
	Index   int
	Content *question.Content
	Err     error
}

// validateDoneMsg carries the evaluator's verdict for a structured answer.
type validateDoneMsg struct {
	Index   int
	Correct bool
	Err     error
}

// completedMsg is sent when the completion pipeline (evaluate, persist,
// clear session) has finished.
type completedMsg struct {
	Result *results.Result
	Err    error
}

// countdownTickMsg drives the per-question countdown.
type countdownTickMsg time.Time
