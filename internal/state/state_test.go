package state

import (
	"context"
	"testing"
	"time"

	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/store"
)

// memRepo is an in-memory StateRepo for tests.
type memRepo struct {
	blobs map[string]map[string]any
}

func newMemRepo() *memRepo {
	return &memRepo{blobs: make(map[string]map[string]any)}
}

func (m *memRepo) SaveBlob(_ context.Context, ns string, doc map[string]any) error {
	m.blobs[ns] = doc
	return nil
}

func (m *memRepo) LoadBlob(_ context.Context, ns string) (map[string]any, error) {
	return m.blobs[ns], nil
}

func (m *memRepo) ClearBlob(_ context.Context, ns string) error {
	delete(m.blobs, ns)
	return nil
}

func TestQuizStateHydrationFlag(t *testing.T) {
	s := NewQuizState(newMemRepo())
	if s.Hydrated() {
		t.Fatal("fresh state must not report hydrated")
	}
	if err := s.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if !s.Hydrated() {
		t.Fatal("hydrate must set the flag")
	}
	if !s.Empty() {
		t.Fatal("empty store must hydrate to empty session")
	}
}

func TestQuizStateSurvivesRestart(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	first := NewQuizState(repo)
	if err := first.Hydrate(ctx); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	err := first.Set(ctx, QuizDoc{
		Questions: []question.Question{
			{ID: 1, Type: question.TypeMCQ, Prompt: "q", Answer: "A. x"},
			question.Placeholder(2, question.TypeStructured),
		},
		Answers:   map[int]string{1: "A. x"},
		StartedAt: started,
		Module:    "transport",
	})
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	// New process, same store.
	second := NewQuizState(repo)
	if err := second.Hydrate(ctx); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if second.Empty() {
		t.Fatal("session lost across restart")
	}
	doc := second.Doc()
	if len(doc.Questions) != 2 || doc.Questions[0].Prompt != "q" {
		t.Errorf("questions = %+v", doc.Questions)
	}
	if doc.Questions[1].Fetched() {
		t.Error("placeholder came back fetched")
	}
	if doc.Answers[1] != "A. x" {
		t.Errorf("answers = %v", doc.Answers)
	}
	if !doc.StartedAt.Equal(started) {
		t.Errorf("startedAt = %v", doc.StartedAt)
	}
	if doc.Module != "transport" {
		t.Errorf("module = %q", doc.Module)
	}
}

func TestQuizStateClear(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	s := NewQuizState(repo)
	if err := s.Hydrate(ctx); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if err := s.Set(ctx, QuizDoc{Questions: []question.Question{question.Placeholder(1, question.TypeMCQ)}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !s.Empty() {
		t.Error("clear left session in memory")
	}
	if repo.blobs[store.NamespaceQuiz] != nil {
		t.Error("clear left session in store")
	}
}

func TestUserStateRoundTrip(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	u := NewUserState(repo)
	if err := u.Hydrate(ctx); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	err := u.Set(ctx, UserDoc{UserID: "u1", Subject: "networks", Difficulty: "medium"})
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	again := NewUserState(repo)
	if err := again.Hydrate(ctx); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	doc := again.Doc()
	if doc.UserID != "u1" || doc.Subject != "networks" || doc.Difficulty != "medium" {
		t.Errorf("doc = %+v", doc)
	}
}
