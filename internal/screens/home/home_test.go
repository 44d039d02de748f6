package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ishara/quizdeck/internal/question"
	quizscreen "github.com/ishara/quizdeck/internal/screens/quiz"
	"github.com/ishara/quizdeck/internal/state"
)

type memStateRepo struct {
	blobs map[string]map[string]any
}

func (m *memStateRepo) SaveBlob(_ context.Context, ns string, doc map[string]any) error {
	if m.blobs == nil {
		m.blobs = make(map[string]map[string]any)
	}
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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestStates(t *testing.T) (*state.QuizState, *state.UserState) {
	t.Helper()
	repo := &memStateRepo{}
	quiz := state.NewQuizState(repo)
	user := state.NewUserState(repo)
	ctx := context.Background()
	if err := quiz.Hydrate(ctx); err != nil {
		t.Fatalf("hydrate quiz: %v", err)
	}
	if err := user.Hydrate(ctx); err != nil {
		t.Fatalf("hydrate user: %v", err)
	}
	return quiz, user
}

func sampleSession() state.QuizDoc {
	return state.QuizDoc{
		Questions: []question.Question{
			{ID: 1, Type: question.TypeMCQ, Prompt: "q1"},
		},
		Answers:   map[int]string{},
		StartedAt: time.Now(),
	}
}

func TestResumeItemTracksSessionState(t *testing.T) {
	quiz, user := newTestStates(t)
	ctx := context.Background()

	h := New(Options{Quiz: quizscreen.Options{State: quiz}, User: user})
	if !h.menu.Items[0].Disabled {
		t.Fatal("resume should be disabled with no stored session")
	}

	// A session appears mid-run, e.g. a quiz paused back to the menu.
	if err := quiz.Set(ctx, sampleSession()); err != nil {
		t.Fatalf("set session: %v", err)
	}
	h.Update(keyPress('j'))
	if h.menu.Items[0].Disabled {
		t.Error("resume should be enabled once a session survives")
	}

	// Completing a quiz clears the session; the item must follow.
	if err := quiz.Clear(ctx); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	h.Update(keyPress('j'))
	if !h.menu.Items[0].Disabled {
		t.Error("resume should be disabled again after the session is cleared")
	}
}

func TestQuizOptionsApplyAssignedDifficulty(t *testing.T) {
	quiz, user := newTestStates(t)
	ctx := context.Background()

	h := New(Options{
		Quiz: quizscreen.Options{State: quiz, Subject: "english", Difficulty: "medium"},
		User: user,
	})
	if got := h.quizOptions().Difficulty; got != "medium" {
		t.Fatalf("difficulty = %q, want medium before placement", got)
	}

	// A placement test in this run assigns a new level; the next quiz must
	// pick it up without a restart.
	doc := user.Doc()
	doc.Difficulty = "hard"
	if err := user.Set(ctx, doc); err != nil {
		t.Fatalf("set user: %v", err)
	}

	opts := h.quizOptions()
	if opts.Difficulty != "hard" {
		t.Errorf("difficulty = %q, want hard after placement", opts.Difficulty)
	}
	if opts.Subject != "english" {
		t.Errorf("subject = %q, want english untouched", opts.Subject)
	}
}
