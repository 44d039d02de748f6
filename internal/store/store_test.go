package store

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/results"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult(userID string, score int) *results.Result {
	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &results.Result{
		UserID:         userID,
		Subject:        "networks",
		Module:         "transport",
		Difficulty:     "medium",
		Score:          score,
		TotalQuestions: 20,
		StartedAt:      started,
		CompletedAt:    started.Add(7 * time.Minute),
		TimeSpent:      7 * time.Minute,
		Questions: []question.Question{
			{ID: 1, Type: question.TypeMCQ, Prompt: "q1", Answer: "A. yes", Topic: "tcp"},
		},
		Answers:  map[int]string{1: "A. yes"},
		Feedback: []results.Feedback{{IsCorrect: true}},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestResultSaveAndGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	in := sampleResult("u1", 14)
	id, err := repo.Save(ctx, in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	out, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.ID != id {
		t.Errorf("id = %q, want %q", out.ID, id)
	}
	if out.Score != 14 || out.Subject != "networks" || out.Module != "transport" {
		t.Errorf("scalar fields: %+v", out)
	}
	if out.TimeSpent != 7*time.Minute {
		t.Errorf("time spent = %v", out.TimeSpent)
	}
	if len(out.Questions) != 1 || out.Questions[0].Prompt != "q1" {
		t.Errorf("questions = %+v", out.Questions)
	}
	if out.Answers[1] != "A. yes" {
		t.Errorf("answers = %v", out.Answers)
	}
	if len(out.Feedback) != 1 || !out.Feedback[0].IsCorrect {
		t.Errorf("feedback = %+v", out.Feedback)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Results().GetByID(context.Background(), "no-such-id")
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestListRecentNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		r := sampleResult("u1", i)
		r.CompletedAt = r.CompletedAt.Add(time.Duration(i) * time.Hour)
		if _, err := repo.Save(ctx, r); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	// A result from another subject must not leak into the listing.
	other := sampleResult("u1", 99)
	other.Subject = "cloud"
	if _, err := repo.Save(ctx, other); err != nil {
		t.Fatalf("save other subject: %v", err)
	}

	list, err := repo.ListRecent(ctx, ListOpts{UserID: "u1", Subject: "networks", Difficulty: "medium"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].Score != 2 || list[2].Score != 0 {
		t.Errorf("order: scores %d,%d,%d", list[0].Score, list[1].Score, list[2].Score)
	}
}

func TestListRecentModuleFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	a := sampleResult("u1", 5)
	b := sampleResult("u1", 9)
	b.Module = "routing"
	for _, r := range []*results.Result{a, b} {
		if _, err := repo.Save(ctx, r); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	list, err := repo.ListRecent(ctx, ListOpts{UserID: "u1", Difficulty: "medium", Module: "routing"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Score != 9 {
		t.Errorf("filtered list = %+v", list)
	}
}

func TestLeaderboardSumsPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	for _, e := range []struct {
		user  string
		score int
	}{
		{"u1", 30}, {"u2", 50}, {"u2", 10},
	} {
		if _, err := repo.Save(ctx, sampleResult(e.user, e.score)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	// Each subject has its own board; a score elsewhere must not be summed
	// into this one.
	other := sampleResult("u1", 50)
	other.Subject = "cloud"
	if _, err := repo.Save(ctx, other); err != nil {
		t.Fatalf("save other subject: %v", err)
	}

	board, err := repo.Leaderboard(ctx, "networks", "medium", 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("len = %d, want 2", len(board))
	}
	if board[0].UserID != "u2" || board[0].TotalScore != 60 {
		t.Errorf("board[0] = %+v", board[0])
	}
	if board[1].UserID != "u1" || board[1].TotalScore != 30 {
		t.Errorf("board[1] = %+v", board[1])
	}
}

func TestAveragesZeroDefault(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Results().Averages(context.Background(), "nobody", "networks", "medium")
	if err != nil {
		t.Fatalf("averages: %v", err)
	}
	if *stats != (results.Stats{}) {
		t.Errorf("stats = %+v, want zero value", *stats)
	}
}

func TestAverages(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	for _, score := range []int{10, 20} {
		if _, err := repo.Save(ctx, sampleResult("u1", score)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	stats, err := repo.Averages(ctx, "u1", "networks", "medium")
	if err != nil {
		t.Fatalf("averages: %v", err)
	}
	if stats.TotalQuizzes != 2 {
		t.Errorf("total quizzes = %d", stats.TotalQuizzes)
	}
	if stats.AverageScore != 15 {
		t.Errorf("average score = %v", stats.AverageScore)
	}
	if stats.HighestScore != 20 || stats.LowestScore != 10 {
		t.Errorf("high/low = %d/%d", stats.HighestScore, stats.LowestScore)
	}
	wantDur := (7 * time.Minute).Milliseconds() * 2
	if stats.TotalDuration != wantDur {
		t.Errorf("total duration = %d, want %d", stats.TotalDuration, wantDur)
	}
}

func TestStateBlobRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.State()
	ctx := context.Background()

	// Never written: nil, no error.
	doc, err := repo.LoadBlob(ctx, NamespaceQuiz)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if doc != nil {
		t.Fatal("expected nil for unwritten namespace")
	}

	if err := repo.SaveBlob(ctx, NamespaceQuiz, map[string]any{"startedAt": "2026-03-10T09:00:00Z"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Overwrite in place.
	if err := repo.SaveBlob(ctx, NamespaceQuiz, map[string]any{"startedAt": "2026-03-11T09:00:00Z"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	doc, err = repo.LoadBlob(ctx, NamespaceQuiz)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc["startedAt"] != "2026-03-11T09:00:00Z" {
		t.Errorf("doc = %v", doc)
	}

	if err := repo.ClearBlob(ctx, NamespaceQuiz); err != nil {
		t.Fatalf("clear: %v", err)
	}
	doc, err = repo.LoadBlob(ctx, NamespaceQuiz)
	if err != nil || doc != nil {
		t.Errorf("after clear: doc=%v err=%v", doc, err)
	}

	// Clearing again is not an error.
	if err := repo.ClearBlob(ctx, NamespaceQuiz); err != nil {
		t.Errorf("double clear: %v", err)
	}
}

func TestSanitize(t *testing.T) {
	in := map[string]any{
		"ok":     "value",
		"count":  float64(3),
		"nan":    math.NaN(),
		"inf":    math.Inf(1),
		"nested": map[string]any{"missing": nil, "ch": make(chan int)},
		"list":   []any{math.NaN(), "x"},
	}

	out := SanitizeMap(in)
	if out["ok"] != "value" || out["count"] != float64(3) {
		t.Errorf("scalars altered: %v", out)
	}
	if out["nan"] != nil || out["inf"] != nil {
		t.Errorf("non-finite floats not normalized: %v", out)
	}
	nested := out["nested"].(map[string]any)
	if nested["missing"] != nil || nested["ch"] != nil {
		t.Errorf("nested not normalized: %v", nested)
	}
	list := out["list"].([]any)
	if list[0] != nil || list[1] != "x" {
		t.Errorf("list not normalized: %v", list)
	}
}
