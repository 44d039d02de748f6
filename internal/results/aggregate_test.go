package results

import (
	"testing"

	"github.com/ishara/quizdeck/internal/question"
)

func mcq(id int, topic, answer string) question.Question {
	return question.Question{
		ID:     id,
		Type:   question.TypeMCQ,
		Prompt: "q" + topic,
		Answer: answer,
		Topic:  topic,
	}
}

func structured(id int, topic string, correct *bool) question.Question {
	q := question.Question{
		ID:     id,
		Type:   question.TypeStructured,
		Prompt: "explain",
		Topic:  topic,
	}
	q.Correct = correct
	return q
}

func boolp(b bool) *bool { return &b }

func TestAggregateLeadingTokenGrading(t *testing.T) {
	questions := []question.Question{
		mcq(1, "Geography", "B. Paris"),
		mcq(2, "Geography", "C. Rome"),
	}
	// Same label with divergent text still counts as correct. The grader
	// compares labels only.
	answers := map[int]string{
		1: "B. London",
		2: "A. Madrid",
	}

	ev := Aggregate(questions, answers, 2)
	if ev.Score != 1 {
		t.Errorf("score = %d, want 1", ev.Score)
	}
	if !ev.Feedback[0].IsCorrect || ev.Feedback[1].IsCorrect {
		t.Errorf("feedback = %+v", ev.Feedback)
	}
}

func TestAggregateStructuredUsesValidatorVerdict(t *testing.T) {
	questions := []question.Question{
		structured(1, "Essays", boolp(true)),
		structured(2, "Essays", boolp(false)),
		structured(3, "Essays", nil), // never validated
	}
	answers := map[int]string{1: "a", 2: "b", 3: "c"}

	ev := Aggregate(questions, answers, 3)
	if ev.Score != 1 {
		t.Errorf("score = %d, want 1", ev.Score)
	}
	if ev.Feedback[2].IsCorrect {
		t.Error("unvalidated structured question must grade incorrect")
	}
}

func TestAggregatePadsFeedbackToTerminalCount(t *testing.T) {
	questions := make([]question.Question, 0, 12)
	answers := map[int]string{}
	for i := 1; i <= 12; i++ {
		questions = append(questions, mcq(i, "T", "A. yes"))
		answers[i] = "A. yes"
	}

	ev := Aggregate(questions, answers, 20)
	if len(ev.Feedback) != 20 {
		t.Fatalf("feedback length = %d, want 20", len(ev.Feedback))
	}
	if ev.Score != 12 {
		t.Errorf("score = %d, want 12", ev.Score)
	}
	for i := 12; i < 20; i++ {
		if ev.Feedback[i].IsCorrect {
			t.Errorf("padding entry %d marked correct", i)
		}
	}
}

func TestAggregateUnansweredIsIncorrect(t *testing.T) {
	questions := []question.Question{mcq(1, "T", "A. x")}
	ev := Aggregate(questions, map[int]string{}, 1)
	if ev.Score != 0 || ev.Feedback[0].IsCorrect {
		t.Errorf("unanswered graded correct: %+v", ev)
	}
}

func TestAggregateWeakTopics(t *testing.T) {
	questions := []question.Question{
		mcq(1, "Algebra", "A. x"),
		mcq(2, "Algebra", "B. y"),
		mcq(3, "Geometry", "C. z"),
	}
	// Algebra 0/2 (below threshold), Geometry 1/1.
	answers := map[int]string{
		1: "B. wrong",
		2: "C. wrong",
		3: "C. z",
	}

	ev := Aggregate(questions, answers, 3)
	if len(ev.WeakTopics) != 1 || ev.WeakTopics[0] != "Algebra" {
		t.Errorf("weak topics = %v, want [Algebra]", ev.WeakTopics)
	}
}

func TestAggregateWeakTopicsExactThresholdNotWeak(t *testing.T) {
	questions := []question.Question{
		mcq(1, "Algebra", "A. x"),
		mcq(2, "Algebra", "B. y"),
	}
	// Exactly 50% stays off the weak list.
	answers := map[int]string{1: "A. x"}

	ev := Aggregate(questions, answers, 2)
	if len(ev.WeakTopics) != 0 {
		t.Errorf("weak topics = %v, want none", ev.WeakTopics)
	}
}

func TestAggregateSkipsPlaceholdersInWeakTopics(t *testing.T) {
	fetched := mcq(1, "Algebra", "A. x")
	placeholder := question.Placeholder(2, question.TypeMCQ)
	placeholder.Topic = "Algebra"

	ev := Aggregate([]question.Question{fetched, placeholder}, map[int]string{1: "A. x"}, 2)
	if len(ev.WeakTopics) != 0 {
		t.Errorf("weak topics = %v; unfetched questions must not count", ev.WeakTopics)
	}
}

func TestRankUsers(t *testing.T) {
	users := []string{"u1", "u2", "u2"}
	scores := []int{30, 50, 10}

	board := RankUsers(users, scores, 0)
	if len(board) != 2 {
		t.Fatalf("board length = %d, want 2", len(board))
	}
	if board[0].UserID != "u2" || board[0].TotalScore != 60 || board[0].QuizCount != 2 {
		t.Errorf("board[0] = %+v", board[0])
	}
	if board[1].UserID != "u1" || board[1].TotalScore != 30 {
		t.Errorf("board[1] = %+v", board[1])
	}
}

func TestRankUsersTieKeepsFirstSeenOrder(t *testing.T) {
	board := RankUsers([]string{"a", "b"}, []int{40, 40}, 0)
	if board[0].UserID != "a" || board[1].UserID != "b" {
		t.Errorf("tie order = %v", board)
	}
}

func TestRankUsersLimit(t *testing.T) {
	board := RankUsers([]string{"a", "b", "c"}, []int{3, 2, 1}, 2)
	if len(board) != 2 {
		t.Errorf("limit ignored, length = %d", len(board))
	}
}
