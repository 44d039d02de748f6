// Package results grades a completed session and shapes the persisted
// Result document: score, per-question feedback, weak topics, and summary
// statistics.
package results

import (
	"context"
	"sort"

	"github.com/ishara/quizdeck/internal/question"
)

// WeakTopicThreshold is the correctness ratio below which a topic is
// reported as weak and fed back into the next session's generation.
const WeakTopicThreshold = 0.5

// Feedback is the per-question grading record, parallel to the question
// sequence.
type Feedback struct {
	IsCorrect bool             `json:"isCorrect"`
	Criteria  FeedbackCriteria `json:"feedback"`
	Comments  string           `json:"comments"`
}

// FeedbackCriteria carries the structured-answer rubric comments returned
// by the remote evaluator. Empty for locally graded questions.
type FeedbackCriteria struct {
	Criteria1 string `json:"criteria1"`
	Criteria2 string `json:"criteria2"`
	Criteria3 string `json:"criteria3"`
}

// Evaluation is the outcome of grading a session.
type Evaluation struct {
	Score      int
	Feedback   []Feedback
	WeakTopics []string
}

// Evaluator grades a completed session. The local aggregator is the default;
// the remote evaluate-quiz endpoint is an alternative for subjects that
// grade server-side.
type Evaluator interface {
	Evaluate(ctx context.Context, questions []question.Question, answers map[int]string, terminalCount int) (*Evaluation, error)
}

// Aggregator is the local, pure-function Evaluator.
type Aggregator struct{}

func (Aggregator) Evaluate(_ context.Context, questions []question.Question, answers map[int]string, terminalCount int) (*Evaluation, error) {
	return Aggregate(questions, answers, terminalCount), nil
}

// Aggregate grades every question and derives score and weak topics.
//
// Choice-like questions are correct iff the submitted answer's leading token
// matches the canonical answer's (see question.LeadingTokenMatch). Structured
// questions take their verdict from the Correct flag set by the external
// evaluator during the session; a question that was never validated counts
// as incorrect.
//
// When the session ended with fewer questions fetched than the configured
// terminal count, the feedback list is padded with incorrect/empty entries
// so its length always equals terminalCount. Trailing questions lost to
// early termination are thereby scored the same as wrong answers.
func Aggregate(questions []question.Question, answers map[int]string, terminalCount int) *Evaluation {
	ev := &Evaluation{
		Feedback: make([]Feedback, 0, terminalCount),
	}

	for i := range questions {
		q := &questions[i]
		correct := graded(q, answers)
		if correct {
			ev.Score++
		}
		ev.Feedback = append(ev.Feedback, Feedback{
			IsCorrect: correct,
			Comments:  q.Explanation,
		})
	}

	for len(ev.Feedback) < terminalCount {
		ev.Feedback = append(ev.Feedback, Feedback{})
	}

	ev.WeakTopics = weakTopics(questions, ev.Feedback)
	return ev
}

func graded(q *question.Question, answers map[int]string) bool {
	if !q.Fetched() {
		return false
	}
	if q.Type == question.TypeStructured {
		return q.Correct != nil && *q.Correct
	}
	submitted, ok := answers[q.ID]
	if !ok {
		return false
	}
	return question.LeadingTokenMatch(submitted, q.Answer)
}

// weakTopics groups graded questions by topic and returns, in first-seen
// order, every topic whose correctness ratio falls below the threshold.
func weakTopics(questions []question.Question, feedback []Feedback) []string {
	type tally struct {
		total   int
		correct int
	}
	order := make([]string, 0)
	byTopic := make(map[string]*tally)

	for i := range questions {
		topic := questions[i].Topic
		if topic == "" || !questions[i].Fetched() {
			continue
		}
		tl := byTopic[topic]
		if tl == nil {
			tl = &tally{}
			byTopic[topic] = tl
			order = append(order, topic)
		}
		tl.total++
		if feedback[i].IsCorrect {
			tl.correct++
		}
	}

	var weak []string
	for _, topic := range order {
		tl := byTopic[topic]
		if float64(tl.correct)/float64(tl.total) < WeakTopicThreshold {
			weak = append(weak, topic)
		}
	}
	return weak
}

// Stats summarizes a user's stored results for one difficulty and subject.
// The zero value is the documented response when no results exist.
type Stats struct {
	AverageScore          float64 `json:"averageScore"`
	TotalQuizzes          int     `json:"totalQuizzes"`
	TotalDuration         int64   `json:"totalDuration"` // milliseconds
	AverageDuration       float64 `json:"averageDuration"`
	HighestScore          int     `json:"highestScore"`
	LowestScore           int     `json:"lowestScore"`
	TotalCorrectAnswers   int     `json:"totalCorrectAnswers"`
	AverageCorrectAnswers float64 `json:"averageCorrectAnswers"`
}

// LeaderboardEntry is one row of the per-user score ranking.
type LeaderboardEntry struct {
	UserID     string `json:"userId"`
	TotalScore int    `json:"totalScore"`
	QuizCount  int    `json:"quizCount"`
}

// RankUsers sums scores per user and sorts descending by total. Input order
// is insertion order; the stable sort preserves it for ties.
func RankUsers(userIDs []string, scores []int, limit int) []LeaderboardEntry {
	order := make([]string, 0)
	totals := make(map[string]*LeaderboardEntry)

	for i, uid := range userIDs {
		e := totals[uid]
		if e == nil {
			e = &LeaderboardEntry{UserID: uid}
			totals[uid] = e
			order = append(order, uid)
		}
		e.TotalScore += scores[i]
		e.QuizCount++
	}

	board := make([]LeaderboardEntry, 0, len(order))
	for _, uid := range order {
		board = append(board, *totals[uid])
	}
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TotalScore > board[j].TotalScore
	})

	if limit > 0 && len(board) > limit {
		board = board[:limit]
	}
	return board
}
