package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/ishara/quizdeck/internal/question"
)

func content(prompt string) *question.Content {
	return &question.Content{
		Prompt:  prompt,
		Answer:  "A. yes",
		Options: []string{"A. yes", "B. no"},
		Topic:   "General",
	}
}

// fetchReq runs a transition and asserts it produced a fetch effect.
func fetchReq(t *testing.T, eff Effect) FetchRequest {
	t.Helper()
	fe, ok := eff.(FetchEffect)
	if !ok {
		t.Fatalf("effect = %T, want FetchEffect", eff)
	}
	return fe.Req
}

func TestStartBuildsOrderedPlaceholders(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
	}{
		{"standard", Counts{MCQ: 15, Structured: 5}},
		{"all types", Counts{MCQ: 3, Structured: 2, FillBlank: 4}},
		{"structured only", Counts{Structured: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.counts, "", nil)
			m.Start(time.Now())

			qs := m.Questions()
			if len(qs) != tt.counts.Total() {
				t.Fatalf("len = %d, want %d", len(qs), tt.counts.Total())
			}
			for i, q := range qs {
				if q.ID != i+1 {
					t.Errorf("q[%d].ID = %d, want %d", i, q.ID, i+1)
				}
				if q.Fetched() {
					t.Errorf("q[%d] not a placeholder", i)
				}
				var want question.Type
				switch {
				case i < tt.counts.MCQ:
					want = question.TypeMCQ
				case i < tt.counts.MCQ+tt.counts.Structured:
					want = question.TypeStructured
				default:
					want = question.TypeFillBlank
				}
				if q.Type != want {
					t.Errorf("q[%d].Type = %s, want %s", i, q.Type, want)
				}
			}
		})
	}
}

func TestStartFetchesFirstQuestion(t *testing.T) {
	m := New(Counts{MCQ: 2}, "HADR", []string{"Networking"})
	req := fetchReq(t, m.Start(time.Now()))

	if req.Index != 0 || req.Type != question.TypeMCQ {
		t.Errorf("req = %+v", req)
	}
	if req.Module != "HADR" || len(req.Topics) != 1 {
		t.Errorf("module/topics not threaded: %+v", req)
	}
	if m.Slot(0) != SlotFetching || !m.Busy() {
		t.Error("first slot should be fetching with busy set")
	}
}

func TestFetchGuards(t *testing.T) {
	m := New(Counts{MCQ: 2}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, content("q1"), nil)

	// Ready slot: no-op.
	if eff := m.Fetch(0); eff != nil {
		t.Errorf("fetch on ready slot = %v, want nil", eff)
	}

	// In-flight request blocks a second fetch.
	if eff := m.Fetch(1); eff == nil {
		t.Fatal("expected fetch for placeholder")
	}
	if eff := m.Fetch(1); eff != nil {
		t.Error("fetch while busy must be a no-op")
	}

	// Out of range.
	m.ApplyFetch(1, content("q2"), nil)
	if eff := m.Fetch(5); eff != nil {
		t.Error("fetch out of range must be a no-op")
	}
}

func TestFetchErrorAndRetry(t *testing.T) {
	m := New(Counts{MCQ: 1}, "", nil)
	m.Start(time.Now())

	m.ApplyFetch(0, nil, errors.New("boom"))
	if m.Slot(0) != SlotFetchError {
		t.Fatalf("slot = %v, want SlotFetchError", m.Slot(0))
	}
	if m.Busy() {
		t.Error("busy must clear after a failed fetch")
	}
	if m.LastFetchError() == nil {
		t.Error("fetch error not retained for display")
	}

	// Manual retry re-invokes the same request.
	req := fetchReq(t, m.Fetch(0))
	if req.Index != 0 {
		t.Errorf("retry index = %d", req.Index)
	}
	m.ApplyFetch(0, content("q1"), nil)
	if m.Slot(0) != SlotReady || !m.Current().Fetched() {
		t.Error("retry did not fill the placeholder")
	}
}

func TestAdvanceFetchesNextPlaceholder(t *testing.T) {
	m := New(Counts{MCQ: 3}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, content("q1"), nil)

	m.Answer("A. yes")
	req := fetchReq(t, m.Advance())
	if req.Index != 1 {
		t.Errorf("advance fetched index %d, want 1", req.Index)
	}
	if m.Index() != 1 {
		t.Errorf("pointer = %d, want 1", m.Index())
	}
}

func TestAdvanceToFetchedQuestionIsImmediate(t *testing.T) {
	m := New(Counts{MCQ: 2}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, content("q1"), nil)
	m.Advance()
	m.ApplyFetch(1, content("q2"), nil)
	m.Retreat()

	// q2 is already fetched: no network call on the way forward.
	if eff := m.Advance(); eff != nil {
		t.Errorf("advance to ready slot = %T, want nil", eff)
	}
	if m.Index() != 1 {
		t.Errorf("pointer = %d", m.Index())
	}
}

func TestStructuredValidationBeforeAdvance(t *testing.T) {
	m := New(Counts{Structured: 2}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, &question.Content{Prompt: "explain", Answer: "model answer", Topic: "T"}, nil)

	m.Answer("my essay")
	eff := m.Advance()
	ve, ok := eff.(ValidateEffect)
	if !ok {
		t.Fatalf("effect = %T, want ValidateEffect", eff)
	}
	if ve.Req.Answer != "my essay" || ve.Req.Index != 0 {
		t.Errorf("validate req = %+v", ve.Req)
	}
	if !m.Busy() {
		t.Error("validation must set the busy flag")
	}
	if m.Index() != 0 {
		t.Error("pointer must not move until validation resolves")
	}

	// Verdict lands, navigation resumes into a fetch of the next slot.
	eff = m.ApplyValidation(0, true, nil)
	req := fetchReq(t, eff)
	if req.Index != 1 || m.Index() != 1 {
		t.Errorf("resume: req.Index=%d pointer=%d", req.Index, m.Index())
	}
	if c := m.Questions()[0].Correct; c == nil || !*c {
		t.Error("verdict not recorded")
	}
}

func TestValidationFailureDegradesToUngraded(t *testing.T) {
	m := New(Counts{Structured: 1, FillBlank: 1}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, &question.Content{Prompt: "explain", Answer: "a"}, nil)

	m.Advance()
	eff := m.ApplyValidation(0, false, errors.New("evaluator down"))
	if _, ok := eff.(FetchEffect); !ok {
		t.Fatalf("navigation must proceed despite validation failure, got %T", eff)
	}
	if m.Questions()[0].Correct != nil {
		t.Error("failed validation must leave the question ungraded")
	}
}

func TestValidatedQuestionNotRevalidated(t *testing.T) {
	m := New(Counts{Structured: 2}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, &question.Content{Prompt: "explain", Answer: "a"}, nil)
	m.Advance()
	m.ApplyValidation(0, false, nil)
	m.ApplyFetch(1, &question.Content{Prompt: "more", Answer: "b"}, nil)

	// Retreating off an ungraded structured question validates it first.
	eff := m.Retreat()
	if _, ok := eff.(ValidateEffect); !ok {
		t.Fatalf("retreat over ungraded structured = %T, want ValidateEffect", eff)
	}
	m.ApplyValidation(1, true, nil)
	if m.Index() != 0 {
		t.Fatalf("pointer = %d, want 0", m.Index())
	}

	// Leaving an already-graded question is a pure move.
	if eff := m.Advance(); eff != nil {
		t.Errorf("advance over graded question = %T, want nil", eff)
	}
	if m.Index() != 1 {
		t.Errorf("pointer = %d, want 1", m.Index())
	}
}

func TestAdvancePastEndCompletes(t *testing.T) {
	m := New(Counts{MCQ: 1}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, content("q1"), nil)

	m.Answer("B. no")
	eff := m.Advance()
	ce, ok := eff.(CompleteEffect)
	if !ok {
		t.Fatalf("effect = %T, want CompleteEffect", eff)
	}
	if m.Phase() != Completed {
		t.Error("phase must be Completed")
	}
	if ce.Answers[1] != "B. no" {
		t.Errorf("answers = %v", ce.Answers)
	}
}

func TestFinishNowCompletesWithPartialAnswers(t *testing.T) {
	m := New(Counts{MCQ: 20}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, content("q1"), nil)
	m.Answer("A. yes")

	eff := m.Finish()
	ce, ok := eff.(CompleteEffect)
	if !ok {
		t.Fatalf("effect = %T, want CompleteEffect", eff)
	}
	if len(ce.Answers) != 1 {
		t.Errorf("answers = %v, want the single recorded answer", ce.Answers)
	}
}

func TestFinishValidatesUngraded(t *testing.T) {
	m := New(Counts{Structured: 3}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, &question.Content{Prompt: "explain", Answer: "a"}, nil)
	m.Answer("attempt")

	eff := m.Finish()
	if _, ok := eff.(ValidateEffect); !ok {
		t.Fatalf("effect = %T, want ValidateEffect before completion", eff)
	}
	eff = m.ApplyValidation(0, true, nil)
	if _, ok := eff.(CompleteEffect); !ok {
		t.Fatalf("effect = %T, want CompleteEffect after verdict", eff)
	}
}

func TestAnswerMapSparse(t *testing.T) {
	m := New(Counts{MCQ: 2}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, content("q1"), nil)

	m.Answer("A. yes")
	if a, ok := m.AnswerFor(1); !ok || a != "A. yes" {
		t.Errorf("answer = %q, %v", a, ok)
	}
	m.Answer("")
	if _, ok := m.AnswerFor(1); ok {
		t.Error("clearing an answer must remove the key")
	}
}

func TestReviewModeIsPureNavigation(t *testing.T) {
	qs := []question.Question{
		{ID: 1, Type: question.TypeMCQ, Prompt: "q1", Answer: "A", Options: []string{"A", "B"}},
		{ID: 2, Type: question.TypeStructured, Prompt: "q2", Answer: "model"},
	}
	m := NewReview(qs, map[int]string{1: "A"})

	if eff := m.Advance(); eff != nil {
		t.Errorf("review advance = %T, want nil", eff)
	}
	if m.Index() != 1 {
		t.Errorf("pointer = %d", m.Index())
	}
	// Leaving an ungraded structured question in review: no validation.
	if eff := m.Retreat(); eff != nil {
		t.Errorf("review retreat = %T, want nil", eff)
	}
	// Advancing off the end returns to the referrer.
	m.Advance()
	if eff := m.Advance(); eff == nil {
		t.Fatal("expected exit effect")
	} else if _, ok := eff.(ExitReviewEffect); !ok {
		t.Errorf("effect = %T, want ExitReviewEffect", eff)
	}
}

func TestJump(t *testing.T) {
	m := New(Counts{MCQ: 3}, "", nil)
	m.Start(time.Now())
	m.ApplyFetch(0, content("q1"), nil)

	req := fetchReq(t, m.Jump(2))
	if req.Index != 2 || m.Index() != 2 {
		t.Errorf("jump: req.Index=%d pointer=%d", req.Index, m.Index())
	}
	if eff := m.Jump(2); eff != nil {
		t.Error("jump to current index must be a no-op")
	}
}

func TestResume(t *testing.T) {
	started := time.Now().Add(-5 * time.Minute)
	qs := []question.Question{
		{ID: 1, Type: question.TypeMCQ, Prompt: "q1", Answer: "A", Options: []string{"A", "B"}},
		question.Placeholder(2, question.TypeMCQ),
	}
	m := New(Counts{MCQ: 2}, "", nil)
	eff := m.Resume(qs, map[int]string{1: "A"}, started)

	if eff != nil {
		t.Errorf("resume with fetched first question = %T, want nil", eff)
	}
	if m.Phase() != InProgress || m.Slot(0) != SlotReady || m.Slot(1) != SlotPlaceholder {
		t.Errorf("restored state wrong: phase=%v slots=%v,%v", m.Phase(), m.Slot(0), m.Slot(1))
	}
	if !m.StartedAt().Equal(started) {
		t.Error("start time not restored")
	}
}
