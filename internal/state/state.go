// Package state holds the two persisted application-state documents: the
// in-progress quiz session and the user's preferences. Both are explicit
// objects loaded once at startup; a Hydrated flag gates any routing decision
// that depends on them, so an empty store is never mistaken for "no session".
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/store"
)

// QuizDoc is the serialized form of an in-progress session.
type QuizDoc struct {
	Questions []question.Question `json:"questions"`
	Answers   map[int]string      `json:"answers"`
	StartedAt time.Time           `json:"startedAt"`
	Module    string              `json:"module,omitempty"`
}

// QuizState is the in-progress session context. Empty() reports whether a
// session survives from a previous run.
type QuizState struct {
	repo store.StateRepo
	doc  QuizDoc

	hydrated bool
}

// NewQuizState wraps the repo; call Hydrate before reading.
func NewQuizState(repo store.StateRepo) *QuizState {
	return &QuizState{repo: repo}
}

// Hydrate loads the persisted session, if any, and marks the state ready.
func (s *QuizState) Hydrate(ctx context.Context) error {
	raw, err := s.repo.LoadBlob(ctx, store.NamespaceQuiz)
	if err != nil {
		return fmt.Errorf("hydrate quiz state: %w", err)
	}
	if raw != nil {
		if err := decodeDoc(raw, &s.doc); err != nil {
			return fmt.Errorf("decode quiz state: %w", err)
		}
	}
	s.hydrated = true
	return nil
}

// Hydrated reports whether the persisted session has been loaded. Routing
// must not consult Empty() before this returns true.
func (s *QuizState) Hydrated() bool { return s.hydrated }

// Empty reports whether no session is stored.
func (s *QuizState) Empty() bool { return len(s.doc.Questions) == 0 }

// Doc returns the current session document.
func (s *QuizState) Doc() QuizDoc { return s.doc }

// Set replaces the session document and persists it.
func (s *QuizState) Set(ctx context.Context, doc QuizDoc) error {
	s.doc = doc
	raw, err := encodeDoc(doc)
	if err != nil {
		return fmt.Errorf("encode quiz state: %w", err)
	}
	if err := s.repo.SaveBlob(ctx, store.NamespaceQuiz, raw); err != nil {
		return fmt.Errorf("persist quiz state: %w", err)
	}
	return nil
}

// Clear drops the session, both in memory and in the store.
func (s *QuizState) Clear(ctx context.Context) error {
	s.doc = QuizDoc{}
	if err := s.repo.ClearBlob(ctx, store.NamespaceQuiz); err != nil {
		return fmt.Errorf("clear quiz state: %w", err)
	}
	return nil
}

// UserDoc is the serialized form of user preferences.
type UserDoc struct {
	UserID     string `json:"userId"`
	Subject    string `json:"subject,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Module     string `json:"module,omitempty"`
}

// UserState is the user-preferences context, same hydration contract as
// QuizState.
type UserState struct {
	repo store.StateRepo
	doc  UserDoc

	hydrated bool
}

func NewUserState(repo store.StateRepo) *UserState {
	return &UserState{repo: repo}
}

func (s *UserState) Hydrate(ctx context.Context) error {
	raw, err := s.repo.LoadBlob(ctx, store.NamespaceUser)
	if err != nil {
		return fmt.Errorf("hydrate user state: %w", err)
	}
	if raw != nil {
		if err := decodeDoc(raw, &s.doc); err != nil {
			return fmt.Errorf("decode user state: %w", err)
		}
	}
	s.hydrated = true
	return nil
}

func (s *UserState) Hydrated() bool { return s.hydrated }

func (s *UserState) Doc() UserDoc { return s.doc }

func (s *UserState) Set(ctx context.Context, doc UserDoc) error {
	s.doc = doc
	raw, err := encodeDoc(doc)
	if err != nil {
		return fmt.Errorf("encode user state: %w", err)
	}
	if err := s.repo.SaveBlob(ctx, store.NamespaceUser, raw); err != nil {
		return fmt.Errorf("persist user state: %w", err)
	}
	return nil
}

func (s *UserState) Clear(ctx context.Context) error {
	s.doc = UserDoc{}
	if err := s.repo.ClearBlob(ctx, store.NamespaceUser); err != nil {
		return fmt.Errorf("clear user state: %w", err)
	}
	return nil
}

// encodeDoc and decodeDoc are the explicit serialization boundary between
// typed state and the store's document form.
func encodeDoc(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeDoc(raw map[string]any, out any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
