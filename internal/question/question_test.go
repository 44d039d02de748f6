package question

import "testing"

func TestPlaceholderIsNotFetched(t *testing.T) {
	q := Placeholder(3, TypeMCQ)
	if q.Fetched() {
		t.Fatal("placeholder must not report fetched")
	}
	if q.ID != 3 || q.Type != TypeMCQ {
		t.Errorf("placeholder = %+v, want id 3 type mcq", q)
	}
}

func TestFillPreservesIDAndType(t *testing.T) {
	q := Placeholder(7, TypeStructured)
	q.Fill(Content{
		Prompt: "Explain eventual consistency.",
		Answer: "Replicas converge over time.",
		Topic:  "Distributed Systems",
	})

	if !q.Fetched() {
		t.Fatal("filled question must report fetched")
	}
	if q.ID != 7 || q.Type != TypeStructured {
		t.Errorf("id/type changed by Fill: %+v", q)
	}
	if q.Topic != "Distributed Systems" {
		t.Errorf("topic = %q", q.Topic)
	}
}

func TestChoiceLike(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{TypeMCQ, true},
		{TypeFillBlank, true},
		{TypeDifficulty, true},
		{TypeStructured, false},
	}
	for _, tt := range tests {
		if got := tt.typ.ChoiceLike(); got != tt.want {
			t.Errorf("%s.ChoiceLike() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestOptionIndex(t *testing.T) {
	q := Question{
		Type:    TypeMCQ,
		Prompt:  "Capital of France?",
		Answer:  "B. Paris",
		Options: []string{"A. London", "B. Paris", "C. Rome", "D. Berlin"},
	}
	if idx := q.OptionIndex(); idx != 1 {
		t.Errorf("exact match index = %d, want 1", idx)
	}

	// Canonical answer without the label still resolves via leading token
	// when an option starts the same way.
	q.Answer = "B"
	if idx := q.OptionIndex(); idx != 1 {
		t.Errorf("leading-token index = %d, want 1", idx)
	}

	q.Answer = "E. Madrid"
	if idx := q.OptionIndex(); idx != -1 {
		t.Errorf("no-match index = %d, want -1", idx)
	}

	structured := Question{Type: TypeStructured, Answer: "free text"}
	if idx := structured.OptionIndex(); idx != -1 {
		t.Errorf("structured index = %d, want -1", idx)
	}
}

func TestLeadingTokenMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		// The deliberate tolerance: same label, different option text.
		{"B. Paris", "B. London", true},
		{"B. Paris", "b. paris", true},
		{"A) 42", "A) 42", true},
		{"Paris", "Paris", true},
		{"A. Paris", "B. Paris", false},
		{"", "B. Paris", false},
		{"B. Paris", "", false},
	}
	for _, tt := range tests {
		if got := LeadingTokenMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("LeadingTokenMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSetCorrect(t *testing.T) {
	q := Question{Type: TypeStructured, Prompt: "x"}
	if q.Correct != nil {
		t.Fatal("new question must be ungraded")
	}
	q.SetCorrect(true)
	if q.Correct == nil || !*q.Correct {
		t.Error("SetCorrect(true) not recorded")
	}
}
