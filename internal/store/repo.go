package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ishara/quizdeck/internal/results"
)

// ListOpts filters result listings.
type ListOpts struct {
	UserID     string // required
	Subject    string // optional subject filter
	Difficulty string // optional difficulty filter
	Module     string // optional module filter
	Limit      int    // max results (0 = repo default)
}

// NotFoundError reports a lookup for a result id that does not exist.
// Callers distinguish it from I/O failures to render "no such result"
// instead of an error screen.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("result %s not found", e.ID)
}

// IsNotFound reports whether err is a missing-result lookup.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ResultRepo manages completed session records.
type ResultRepo interface {
	// Save persists a result, assigning and returning its id.
	Save(ctx context.Context, r *results.Result) (string, error)

	// GetByID loads one result. Returns *NotFoundError when the id is
	// unknown.
	GetByID(ctx context.Context, id string) (*results.Result, error)

	// ListRecent returns results newest-first per the filter.
	ListRecent(ctx context.Context, opts ListOpts) ([]*results.Result, error)

	// Leaderboard ranks users by total score across all stored results
	// for one subject and difficulty.
	Leaderboard(ctx context.Context, subject, difficulty string, limit int) ([]results.LeaderboardEntry, error)

	// Averages summarizes a user's results for one subject and difficulty.
	// A user with no results gets the zero Stats, not an error.
	Averages(ctx context.Context, userID, subject, difficulty string) (*results.Stats, error)
}

// StateRepo persists namespaced application-state documents: the
// in-progress session under NamespaceQuiz, preferences under NamespaceUser.
type StateRepo interface {
	// SaveBlob overwrites the document stored under namespace.
	SaveBlob(ctx context.Context, namespace string, doc map[string]any) error

	// LoadBlob returns the stored document, or (nil, nil) when the
	// namespace has never been written.
	LoadBlob(ctx context.Context, namespace string) (map[string]any, error)

	// ClearBlob removes the namespace. Clearing an absent namespace is
	// not an error.
	ClearBlob(ctx context.Context, namespace string) error
}

// State blob namespaces.
const (
	NamespaceQuiz = "quiz-storage"
	NamespaceUser = "user-store"
)
