package quizapi

import (
	"context"

	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/results"
)

// RemoteEvaluator adapts the evaluate-quiz endpoint to results.Evaluator.
// The padding rule applies to remote feedback the same as local: the list
// always comes back at the configured terminal length.
type RemoteEvaluator struct {
	Client *Client
}

func (e RemoteEvaluator) Evaluate(ctx context.Context, questions []question.Question, answers map[int]string, terminalCount int) (*results.Evaluation, error) {
	ev, err := e.Client.EvaluateQuiz(ctx, questions, answers)
	if err != nil {
		return nil, err
	}
	for len(ev.Feedback) < terminalCount {
		ev.Feedback = append(ev.Feedback, results.Feedback{})
	}
	return ev, nil
}

var _ results.Evaluator = RemoteEvaluator{}
