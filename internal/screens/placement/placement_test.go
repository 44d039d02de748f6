package placement

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ishara/quizdeck/internal/question"
	quizm "github.com/ishara/quizdeck/internal/quiz"
	"github.com/ishara/quizdeck/internal/state"
	"github.com/ishara/quizdeck/internal/store"
)

func TestDifficultyFor(t *testing.T) {
	cases := []struct {
		correct, total int
		want           string
	}{
		{5, 5, "hard"},
		{4, 5, "hard"},
		{3, 5, "medium"},
		{2, 5, "easy"},
		{0, 5, "easy"},
		{0, 0, "easy"},
	}
	for _, c := range cases {
		if got := DifficultyFor(c.correct, c.total); got != c.want {
			t.Errorf("DifficultyFor(%d, %d) = %q, want %q", c.correct, c.total, got, c.want)
		}
	}
}

type probeSource struct {
	types []question.Type
}

func (p *probeSource) FetchQuestion(_ context.Context, req quizm.FetchRequest) (*question.Content, error) {
	p.types = append(p.types, req.Type)
	return &question.Content{
		Prompt:  "Pick A.",
		Answer:  "A. right",
		Options: []string{"A. right", "B. wrong"},
		Topic:   "probe",
	}, nil
}

func (p *probeSource) ValidateAnswer(context.Context, quizm.ValidateRequest) (bool, error) {
	return false, nil
}

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

func TestPlacementAssignsAndPersistsDifficulty(t *testing.T) {
	src := &probeSource{}
	repo := &memStateRepo{}
	user := state.NewUserState(repo)
	if err := user.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	s := New(Options{Source: src, User: user, Probes: 2})

	run := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		var ok bool
		if s, ok = next.(*PlacementScreen); !ok {
			t.Fatalf("Update returned %T", next)
		}
		return cmd
	}

	// First probe arrives; answer correctly by number key.
	run(s.Init()().(probeFetchedMsg))
	cmd := run(keyPress('1'))
	if cmd == nil {
		t.Fatal("expected fetch command for the second probe")
	}
	if !s.fetching {
		t.Error("screen should be fetching the next probe")
	}

	// Second probe: answer wrong. 1/2 correct maps to medium.
	run(cmd().(probeFetchedMsg))
	cmd = run(keyPress('2'))
	if !s.done {
		t.Fatal("screen should be done after the last probe")
	}
	if s.assigned != "medium" {
		t.Errorf("assigned = %q, want medium", s.assigned)
	}

	if msg := cmd(); msg.(savedMsg).Err != nil {
		t.Fatalf("save: %v", msg.(savedMsg).Err)
	}
	if got := user.Doc().Difficulty; got != "medium" {
		t.Errorf("persisted difficulty = %q, want medium", got)
	}

	for _, typ := range src.types {
		if typ != question.TypeDifficulty {
			t.Errorf("probe fetched with type %q", typ)
		}
	}
	if repo.blobs[store.NamespaceUser] == nil {
		t.Error("user preferences not persisted")
	}
}

// batchSource serves the probe batch in one call and assigns the level
// server-side.
type batchSource struct {
	probeSource
	level     string
	evalErr   error
	evaluated map[int]string
}

func (b *batchSource) GetDifficultyTest(context.Context) ([]question.Content, error) {
	probe := question.Content{
		Prompt:  "Pick A.",
		Answer:  "A. right",
		Options: []string{"A. right", "B. wrong"},
		Topic:   "probe",
	}
	return []question.Content{probe, probe}, nil
}

func (b *batchSource) EvaluateDifficultyTest(_ context.Context, answers map[int]string) (string, error) {
	b.evaluated = answers
	return b.level, b.evalErr
}

func TestPlacementUsesServerAssignedLevel(t *testing.T) {
	src := &batchSource{level: "hard"}
	repo := &memStateRepo{}
	user := state.NewUserState(repo)
	if err := user.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	s := New(Options{Source: src, User: user})

	run := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		var ok bool
		if s, ok = next.(*PlacementScreen); !ok {
			t.Fatalf("Update returned %T", next)
		}
		return cmd
	}

	// The whole batch arrives in one request; no per-probe fetches.
	run(s.Init()().(batchMsg))
	if len(s.questions) != 2 || s.opts.Probes != 2 {
		t.Fatalf("batch: %d questions, %d probes", len(s.questions), s.opts.Probes)
	}

	// Answer both wrong; the local threshold would say easy.
	if cmd := run(keyPress('2')); cmd != nil {
		t.Fatal("no command expected between batched probes")
	}
	cmd := run(keyPress('2'))
	if !s.evaluating {
		t.Fatal("screen should be waiting on the evaluation")
	}

	// The service's verdict wins over the local threshold.
	cmd = run(cmd().(assignedMsg))
	if !s.done || s.assigned != "hard" {
		t.Errorf("done=%v assigned=%q, want hard", s.done, s.assigned)
	}
	if msg := cmd(); msg.(savedMsg).Err != nil {
		t.Fatalf("save: %v", msg.(savedMsg).Err)
	}
	if got := user.Doc().Difficulty; got != "hard" {
		t.Errorf("persisted difficulty = %q, want hard", got)
	}

	if len(src.evaluated) != 2 || src.evaluated[1] != "B. wrong" || src.evaluated[2] != "B. wrong" {
		t.Errorf("evaluated answers = %v", src.evaluated)
	}
	if len(src.types) != 0 {
		t.Errorf("per-probe fetches issued: %v", src.types)
	}
}

func TestPlacementFallsBackWhenEvaluationFails(t *testing.T) {
	src := &batchSource{level: "hard", evalErr: context.DeadlineExceeded}
	user := state.NewUserState(&memStateRepo{})
	if err := user.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	s := New(Options{Source: src, User: user})

	run := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		var ok bool
		if s, ok = next.(*PlacementScreen); !ok {
			t.Fatalf("Update returned %T", next)
		}
		return cmd
	}

	run(s.Init()().(batchMsg))
	run(keyPress('1'))
	cmd := run(keyPress('1'))
	run(cmd().(assignedMsg))

	// Both correct: the local threshold assigns hard despite the failure.
	if !s.done || s.assigned != "hard" {
		t.Errorf("done=%v assigned=%q, want local fallback hard", s.done, s.assigned)
	}
}
