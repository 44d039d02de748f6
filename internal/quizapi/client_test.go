package quizapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/quiz"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "networks", "u1", nil)
}

func TestFetchQuestionSuccess(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"question": "Capital of France?",
			"answer": "B. Paris",
			"options": ["A. London", "B. Paris"],
			"topic": "geography"
		}`))
	})

	content, err := c.FetchQuestion(context.Background(), quiz.FetchRequest{
		Index: 0,
		Type:  question.TypeMCQ,
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotPath != "/networks/get-next-question" {
		t.Errorf("path = %q", gotPath)
	}
	if content.Prompt != "Capital of France?" || len(content.Options) != 2 {
		t.Errorf("content = %+v", content)
	}
}

func TestFetchQuestionEndpointPerType(t *testing.T) {
	tests := []struct {
		typ  question.Type
		want string
	}{
		{question.TypeMCQ, "/networks/get-next-question"},
		{question.TypeDifficulty, "/networks/get-next-question"},
		{question.TypeStructured, "/networks/generate-hard-question"},
		{question.TypeFillBlank, "/networks/generate-fill-in-the-blank"},
	}

	for _, tt := range tests {
		var gotPath string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"question": "q", "answer": "a", "options": ["A. x", "B. y"]}`))
		})
		if _, err := c.FetchQuestion(context.Background(), quiz.FetchRequest{Type: tt.typ}); err != nil {
			t.Fatalf("%s: fetch: %v", tt.typ, err)
		}
		if gotPath != tt.want {
			t.Errorf("%s: path = %q, want %q", tt.typ, gotPath, tt.want)
		}
	}
}

func TestFetchQuestionDetailEnvelopeIsMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detail": "quiz session expired"}`))
	})

	_, err := c.FetchQuestion(context.Background(), quiz.FetchRequest{Type: question.TypeMCQ})
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
	if malformed.Detail != "quiz session expired" {
		t.Errorf("detail = %q", malformed.Detail)
	}
}

func TestFetchQuestionHTTPErrorIsNetwork(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.FetchQuestion(context.Background(), quiz.FetchRequest{Type: question.TypeMCQ})
	var network *ErrNetwork
	if !errors.As(err, &network) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
	if network.Status != http.StatusBadGateway {
		t.Errorf("status = %d", network.Status)
	}
}

func TestFetchQuestionSchemaViolationIsMalformed(t *testing.T) {
	// Missing required "answer" and "options" for a choice question.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"question": "q"}`))
	})

	_, err := c.FetchQuestion(context.Background(), quiz.FetchRequest{Type: question.TypeMCQ})
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestStructuredQuestionNeedsNoOptions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"question": "Explain TCP slow start.", "topic": "tcp"}`))
	})

	content, err := c.FetchQuestion(context.Background(), quiz.FetchRequest{Type: question.TypeStructured})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if content.Topic != "tcp" {
		t.Errorf("content = %+v", content)
	}
}

func TestValidateAnswer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/networks/validate-hard-answer" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"isCorrect": true}`))
	})

	correct, err := c.ValidateAnswer(context.Background(), quiz.ValidateRequest{Index: 3, Answer: "because"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !correct {
		t.Error("expected correct verdict")
	}
}

func TestStartQuizAndSelectModule(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{}`))
	})

	ctx := context.Background()
	if err := c.StartQuiz(ctx, "u1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.SelectModule(ctx, "u1", "transport"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/networks/start-quiz" || paths[1] != "/networks/select-module" {
		t.Errorf("paths = %v", paths)
	}
}

func TestGetDifficultyTest(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"test_questions": [
			{"question": "q1", "answer": "A. x", "options": ["A. x", "B. y"]},
			{"question": "q2", "answer": "B. y", "options": ["A. x", "B. y"]}
		]}`))
	})

	probes, err := c.GetDifficultyTest(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/networks/get-difficulty-test" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if len(probes) != 2 || probes[0].Prompt != "q1" {
		t.Errorf("probes = %+v", probes)
	}
}

func TestGetDifficultyTestEmptyBatchIsMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"test_questions": []}`))
	})

	_, err := c.GetDifficultyTest(context.Background())
	var malformed *ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestEvaluateDifficultyTest(t *testing.T) {
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/networks/evaluate-difficulty-test" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"difficulty_level": "medium"}`))
	})

	level, err := c.EvaluateDifficultyTest(context.Background(), map[int]string{1: "A. x", 2: "B. y"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if level != "medium" {
		t.Errorf("level = %q, want medium", level)
	}

	var payload struct {
		Answers map[string]string `json:"answers"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if payload.Answers["1"] != "A. x" || payload.Answers["2"] != "B. y" {
		t.Errorf("answers sent = %v", payload.Answers)
	}
}

func TestEvaluateQuizPadsFeedback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score": 2, "feedback": [{"isCorrect": true}, {"isCorrect": true}], "weakTopics": ["tcp"]}`))
	})

	ev, err := RemoteEvaluator{Client: c}.Evaluate(context.Background(), nil, nil, 5)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Score != 2 || len(ev.Feedback) != 5 {
		t.Errorf("score=%d feedback=%d", ev.Score, len(ev.Feedback))
	}
	if ev.Feedback[4].IsCorrect {
		t.Error("padding entry marked correct")
	}
}
