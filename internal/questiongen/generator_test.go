package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ishara/quizdeck/internal/llm"
	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/quiz"
)

func mcqJSON(prompt string) json.RawMessage {
	out, _ := json.Marshal(map[string]any{
		"question":     prompt,
		"options":      []string{"A. one", "B. two", "C. three", "D. four"},
		"answer":       "B. two",
		"topic":        "counting",
		"explaination": "two follows one",
	})
	return out
}

func TestFetchQuestionMCQ(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON("How many?")},
	)
	g := New(mock, "arithmetic", DefaultConfig())

	content, err := g.FetchQuestion(context.Background(), quiz.FetchRequest{
		Index: 0,
		Type:  question.TypeMCQ,
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if content.Prompt != "How many?" || content.Answer != "B. two" {
		t.Errorf("content = %+v", content)
	}
	if len(content.Options) != 4 {
		t.Errorf("options = %v", content.Options)
	}
	if content.Topic != "counting" {
		t.Errorf("topic = %q", content.Topic)
	}
}

func TestFetchQuestionDedupCarriesPriorPrompts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON("first question")},
		llm.MockResponse{Content: mcqJSON("second question")},
	)
	g := New(mock, "arithmetic", DefaultConfig())

	ctx := context.Background()
	if _, err := g.FetchQuestion(ctx, quiz.FetchRequest{Index: 0, Type: question.TypeMCQ}); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := g.FetchQuestion(ctx, quiz.FetchRequest{Index: 1, Type: question.TypeMCQ}); err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	secondPrompt := mock.Calls[1].Messages[0].Content
	if !strings.Contains(secondPrompt, "first question") {
		t.Errorf("second request does not carry the dedup list:\n%s", secondPrompt)
	}
}

func TestFetchQuestionThreadsModuleAndTopics(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON("q")},
	)
	g := New(mock, "networks", DefaultConfig())

	_, err := g.FetchQuestion(context.Background(), quiz.FetchRequest{
		Type:   question.TypeMCQ,
		Module: "transport",
		Topics: []string{"congestion control"},
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Subject: networks", "Module: transport", "congestion control"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestValidateAnswerUsesModelAnswer(t *testing.T) {
	structuredJSON, _ := json.Marshal(map[string]any{
		"question": "Explain slow start.",
		"answer":   "Window doubles each RTT until threshold.",
		"topic":    "tcp",
	})
	verdictJSON, _ := json.Marshal(map[string]any{
		"isCorrect": true,
		"comments":  "Covers the key idea.",
	})
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structuredJSON},
		llm.MockResponse{Content: verdictJSON},
	)
	g := New(mock, "networks", DefaultConfig())

	ctx := context.Background()
	if _, err := g.FetchQuestion(ctx, quiz.FetchRequest{Index: 2, Type: question.TypeStructured}); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	correct, err := g.ValidateAnswer(ctx, quiz.ValidateRequest{Index: 2, Answer: "it doubles the window"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !correct {
		t.Error("expected correct verdict")
	}

	grading := mock.Calls[1].Messages[0].Content
	if !strings.Contains(grading, "Explain slow start.") {
		t.Errorf("grading prompt missing question:\n%s", grading)
	}
	if !strings.Contains(grading, "Window doubles each RTT") {
		t.Errorf("grading prompt missing model answer:\n%s", grading)
	}
}

func TestFetchQuestionProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → unavailable
	g := New(mock, "networks", DefaultConfig())

	_, err := g.FetchQuestion(context.Background(), quiz.FetchRequest{Type: question.TypeMCQ})
	if err == nil {
		t.Fatal("expected error")
	}
}
