package quiz

import (
	"context"

	"github.com/ishara/quizdeck/internal/question"
)

// FetchRequest asks a Source for one question's content. The same request
// value is re-issued verbatim on manual retry.
type FetchRequest struct {
	// Index is the 0-based position of the placeholder being filled.
	Index int

	// Type selects the generation endpoint (mcq / structured / fill-blank).
	Type question.Type

	// Module scopes generation to the selected course module, if any.
	Module string

	// Topics biases generation toward previously identified weak topics.
	Topics []string
}

// ValidateRequest asks the external evaluator to grade a structured answer.
type ValidateRequest struct {
	Index  int
	Answer string
}

// Effect is a network call the state machine needs performed. The machine
// never does I/O itself; the caller executes the effect and feeds the result
// back via ApplyFetch / ApplyValidation.
type Effect interface{ effect() }

// FetchEffect requests question content from the Source.
type FetchEffect struct{ Req FetchRequest }

// ValidateEffect requests grading of a structured answer.
type ValidateEffect struct{ Req ValidateRequest }

// CompleteEffect signals the session ended; Answers is a copy of the final
// answer map for the completion pipeline (aggregate, persist, navigate).
type CompleteEffect struct{ Answers map[int]string }

// ExitReviewEffect signals review-mode navigation ran off the end; the UI
// returns to the referring view.
type ExitReviewEffect struct{}

func (FetchEffect) effect()      {}
func (ValidateEffect) effect()   {}
func (CompleteEffect) effect()   {}
func (ExitReviewEffect) effect() {}

// Source is the external collaborator behind fetch and validate effects:
// either the remote question-generation API or a direct LLM generator.
type Source interface {
	// FetchQuestion generates one question of the requested type.
	FetchQuestion(ctx context.Context, req FetchRequest) (*question.Content, error)

	// ValidateAnswer grades a structured answer via the external evaluator.
	ValidateAnswer(ctx context.Context, req ValidateRequest) (bool, error)
}

// Starter is implemented by sources that need a server-side session opened
// before the first fetch (start-quiz, select-module).
type Starter interface {
	StartQuiz(ctx context.Context, userID string) error
	SelectModule(ctx context.Context, userID, module string) error
}
