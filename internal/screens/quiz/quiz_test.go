package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ishara/quizdeck/internal/question"
	quizm "github.com/ishara/quizdeck/internal/quiz"
	"github.com/ishara/quizdeck/internal/results"
	"github.com/ishara/quizdeck/internal/state"
	"github.com/ishara/quizdeck/internal/store"
)

// fakeSource serves canned content per index.
type fakeSource struct {
	contents map[int]*question.Content
	fetchErr error
	verdict  bool
	fetches  []quizm.FetchRequest
}

func (f *fakeSource) FetchQuestion(_ context.Context, req quizm.FetchRequest) (*question.Content, error) {
	f.fetches = append(f.fetches, req)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.contents[req.Index], nil
}

func (f *fakeSource) ValidateAnswer(context.Context, quizm.ValidateRequest) (bool, error) {
	return f.verdict, nil
}

// memStateRepo is an in-memory store.StateRepo.
type memStateRepo struct {
	blobs map[string]map[string]any
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{blobs: make(map[string]map[string]any)}
}

func (m *memStateRepo) SaveBlob(_ context.Context, ns string, doc map[string]any) error {
	m.blobs[ns] = doc
	return nil
}

func (m *memStateRepo) LoadBlob(_ context.Context, ns string) (map[string]any, error) {
	return m.blobs[ns], nil
}

func (m *memStateRepo) ClearBlob(_ context.Context, ns string) error {
	delete(m.blobs, ns)
	return nil
}

// memResultRepo captures saved results.
type memResultRepo struct {
	saved []*results.Result
}

func (m *memResultRepo) Save(_ context.Context, r *results.Result) (string, error) {
	m.saved = append(m.saved, r)
	return "result-1", nil
}

func (m *memResultRepo) GetByID(_ context.Context, id string) (*results.Result, error) {
	return nil, &store.NotFoundError{ID: id}
}

func (m *memResultRepo) ListRecent(context.Context, store.ListOpts) ([]*results.Result, error) {
	return nil, nil
}

func (m *memResultRepo) Leaderboard(context.Context, string, string, int) ([]results.LeaderboardEntry, error) {
	return nil, nil
}

func (m *memResultRepo) Averages(context.Context, string, string, string) (*results.Stats, error) {
	return &results.Stats{}, nil
}

func mcqContent(prompt string) *question.Content {
	return &question.Content{
		Prompt:  prompt,
		Answer:  "A. Paris",
		Options: []string{"A. Paris", "B. London", "C. Rome", "D. Oslo"},
		Topic:   "Capitals",
	}
}

func newTestScreen(t *testing.T, counts quizm.Counts, src *fakeSource) (*QuizScreen, *memStateRepo, *memResultRepo) {
	t.Helper()
	stateRepo := newMemStateRepo()
	qs := state.NewQuizState(stateRepo)
	if err := qs.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	repo := &memResultRepo{}
	s := New(Options{
		Counts:     counts,
		UserID:     "u1",
		Subject:    "english",
		Difficulty: "medium",
		Source:     src,
		Evaluator:  results.Aggregator{},
		Results:    repo,
		State:      qs,
	})
	return s, stateRepo, repo
}

func update(t *testing.T, s *QuizScreen, msg tea.Msg) (*QuizScreen, tea.Cmd) {
	t.Helper()
	next, cmd := s.Update(msg)
	qs, ok := next.(*QuizScreen)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return qs, cmd
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestStartFetchesFirstQuestion(t *testing.T) {
	src := &fakeSource{contents: map[int]*question.Content{0: mcqContent("Capital of France?")}}
	s, _, _ := newTestScreen(t, quizm.Counts{MCQ: 2}, src)

	s, cmd := update(t, s, startedMsg{})
	if s.machine == nil {
		t.Fatal("machine not created after startedMsg")
	}
	if cmd == nil {
		t.Fatal("expected a fetch command for question 1")
	}
	if s.machine.Slot(0) != quizm.SlotFetching {
		t.Errorf("slot 0 = %v, want fetching", s.machine.Slot(0))
	}
}

func TestAnswerAndAdvanceFetchesNext(t *testing.T) {
	src := &fakeSource{contents: map[int]*question.Content{
		0: mcqContent("Q1?"),
		1: mcqContent("Q2?"),
	}}
	s, stateRepo, _ := newTestScreen(t, quizm.Counts{MCQ: 2}, src)

	s, _ = update(t, s, startedMsg{})
	s, _ = update(t, s, fetchDoneMsg{Index: 0, Content: src.contents[0]})
	if s.machine.Slot(0) != quizm.SlotReady {
		t.Fatalf("slot 0 = %v, want ready", s.machine.Slot(0))
	}

	// Pick option 2 by number key: records the answer and advances.
	s, cmd := update(t, s, keyPress('2'))
	if got, ok := s.machine.AnswerFor(1); !ok || got != "B. London" {
		t.Errorf("answer for q1 = %q (ok=%v), want B. London", got, ok)
	}
	if s.machine.Index() != 1 {
		t.Errorf("index = %d, want 1", s.machine.Index())
	}
	if cmd == nil {
		t.Error("expected fetch command for question 2")
	}
	if stateRepo.blobs[store.NamespaceQuiz] == nil {
		t.Error("session not persisted after answering")
	}
}

func TestFetchErrorThenRetry(t *testing.T) {
	src := &fakeSource{contents: map[int]*question.Content{0: mcqContent("Q1?")}}
	s, _, _ := newTestScreen(t, quizm.Counts{MCQ: 1}, src)

	s, _ = update(t, s, startedMsg{})
	s, _ = update(t, s, fetchDoneMsg{Index: 0, Err: errors.New("connection refused")})

	if s.machine.Slot(0) != quizm.SlotFetchError {
		t.Fatalf("slot 0 = %v, want fetch-error", s.machine.Slot(0))
	}
	if s.status == "" {
		t.Error("expected status line with the fetch error")
	}

	s, cmd := update(t, s, keyPress('r'))
	if cmd == nil {
		t.Fatal("expected retry to issue a fetch command")
	}
	if s.machine.Slot(0) != quizm.SlotFetching {
		t.Errorf("slot 0 = %v after retry, want fetching", s.machine.Slot(0))
	}

	s, _ = update(t, s, fetchDoneMsg{Index: 0, Content: src.contents[0]})
	if s.machine.Slot(0) != quizm.SlotReady {
		t.Errorf("slot 0 = %v after retried fetch, want ready", s.machine.Slot(0))
	}
}

func TestStructuredFinishRunsCompletionPipeline(t *testing.T) {
	src := &fakeSource{
		contents: map[int]*question.Content{0: {
			Prompt: "Explain TCP slow start.",
			Answer: "model answer",
			Topic:  "Congestion",
		}},
		verdict: true,
	}
	s, stateRepo, repo := newTestScreen(t, quizm.Counts{Structured: 1}, src)

	s, _ = update(t, s, startedMsg{})
	s, _ = update(t, s, fetchDoneMsg{Index: 0, Content: src.contents[0]})

	s.input.SetValue("my answer")
	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a validation command before completing")
	}
	if !s.machine.Busy() {
		t.Error("machine should be busy during validation")
	}

	s, cmd = update(t, s, validateDoneMsg{Index: 0, Correct: true})
	if cmd == nil {
		t.Fatal("expected completion command after validation")
	}
	if !s.scoring {
		t.Error("screen should be in scoring state")
	}

	msg := cmd()
	done, ok := msg.(completedMsg)
	if !ok {
		t.Fatalf("completion command returned %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("completion pipeline: %v", done.Err)
	}
	if done.Result.Score != 1 {
		t.Errorf("score = %d, want 1", done.Result.Score)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(repo.saved))
	}
	if done.Result.ID != "result-1" {
		t.Errorf("result id = %q", done.Result.ID)
	}
	if stateRepo.blobs[store.NamespaceQuiz] != nil {
		t.Error("session should be cleared after completion")
	}
}

func TestResumeRestoresPersistedSession(t *testing.T) {
	src := &fakeSource{}
	s, stateRepo, _ := newTestScreen(t, quizm.Counts{MCQ: 2}, src)

	// Simulate a previous run: first question fetched and answered.
	questions := []question.Question{
		{ID: 1, Type: question.TypeMCQ, Prompt: "Q1?", Answer: "A", Options: []string{"A", "B"}, Topic: "t"},
		{ID: 2, Type: question.TypeMCQ},
	}
	qs := state.NewQuizState(stateRepo)
	err := qs.Set(context.Background(), state.QuizDoc{
		Questions: questions,
		Answers:   map[int]string{1: "A"},
		StartedAt: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("seed state: %v", err)
	}
	if err := s.opts.State.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	s, _ = update(t, s, startedMsg{})
	if s.machine.Total() != 2 {
		t.Fatalf("total = %d, want 2", s.machine.Total())
	}
	if s.machine.Slot(0) != quizm.SlotReady {
		t.Errorf("slot 0 = %v, want ready after resume", s.machine.Slot(0))
	}
	if got, ok := s.machine.AnswerFor(1); !ok || got != "A" {
		t.Errorf("answer for q1 = %q (ok=%v), want A", got, ok)
	}
	if s.machine.Slot(1) != quizm.SlotPlaceholder {
		t.Errorf("slot 1 = %v, want placeholder after resume", s.machine.Slot(1))
	}
}

func TestReviewAdvancePastEndPops(t *testing.T) {
	res := &results.Result{
		Questions: []question.Question{
			{ID: 1, Type: question.TypeMCQ, Prompt: "Q1?", Answer: "A", Options: []string{"A", "B"}},
		},
		Answers: map[int]string{1: "B"},
	}
	s := NewReview(res)

	next, cmd := s.Update(keyPress('l'))
	if cmd == nil {
		t.Fatal("expected pop command when review runs off the end")
	}
	if _, ok := next.(*QuizScreen); !ok {
		t.Fatalf("Update returned %T", next)
	}
}
