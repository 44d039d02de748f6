package results

import (
	"testing"
	"time"

	"github.com/ishara/quizdeck/internal/question"
)

func TestBuild(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	completed := started.Add(7 * time.Minute)

	qs := []question.Question{
		{ID: 1, Type: question.TypeMCQ, Prompt: "Q1", Answer: "A", Topic: "t1"},
		{ID: 2, Type: question.TypeMCQ, Prompt: "Q2", Answer: "B", Topic: "t2"},
	}
	answers := map[int]string{1: "A"}
	ev := &Evaluation{
		Score:      1,
		Feedback:   []Feedback{{}, {}},
		WeakTopics: []string{"t2"},
	}

	res := Build("u1", "english", "grammar", "medium", qs, answers, ev, started, completed)

	if res.Score != 1 || res.TotalQuestions != 2 {
		t.Errorf("score = %d/%d, want 1/2", res.Score, res.TotalQuestions)
	}
	if res.TimeSpent != 7*time.Minute {
		t.Errorf("time spent = %v, want 7m", res.TimeSpent)
	}
	if res.Subject != "english" || res.Module != "grammar" || res.Difficulty != "medium" {
		t.Errorf("scope = %s/%s/%s", res.Subject, res.Module, res.Difficulty)
	}
	if len(res.WeakTopics) != 1 || res.WeakTopics[0] != "t2" {
		t.Errorf("weak topics = %v", res.WeakTopics)
	}
}

func TestBuildClampsNegativeDuration(t *testing.T) {
	started := time.Now()
	completed := started.Add(-time.Minute)

	res := Build("u1", "english", "", "easy", nil, nil, &Evaluation{}, started, completed)
	if res.TimeSpent != 0 {
		t.Errorf("time spent = %v, want 0", res.TimeSpent)
	}
}

func TestFormatTimeSpent(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{3*time.Minute + 5*time.Second, "3m 05s"},
		{2*time.Hour + 4*time.Minute, "2h 04m"},
		{-time.Minute, "0s"},
	}
	for _, c := range cases {
		if got := FormatTimeSpent(c.d); got != c.want {
			t.Errorf("FormatTimeSpent(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
