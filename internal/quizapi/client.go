// Package quizapi is the HTTP client for the per-subject question-generation
// service. It implements quiz.Source and quiz.Starter against the remote
// endpoints, distinguishing transport failures from the API's error envelope
// so the session can offer retry on the former and surface the latter.
package quizapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/quiz"
	"github.com/ishara/quizdeck/internal/results"
)

const defaultTimeout = 60 * time.Second

// Client talks to one subject's question-generation service.
type Client struct {
	baseURL string
	subject string
	userID  string
	http    *http.Client
	log     *zap.Logger
}

// New creates a Client rooted at baseURL for the given subject. Requests
// carry userID so the service can thread session context server-side.
func New(baseURL, subject, userID string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		subject: subject,
		userID:  userID,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log.Named("quizapi"),
	}
}

// requestBody is the common POST payload shape.
type requestBody struct {
	UserID     string   `json:"user_id"`
	Topics     []string `json:"topics,omitempty"`
	ModuleName string   `json:"module_name,omitempty"`
	Answer     string   `json:"answer,omitempty"`
	QuestionID int      `json:"question_id,omitempty"`
}

// StartQuiz opens a server-side session.
func (c *Client) StartQuiz(ctx context.Context, userID string) error {
	_, err := c.post(ctx, "start-quiz", requestBody{UserID: userID})
	return err
}

// SelectModule scopes subsequent generation to a course module.
func (c *Client) SelectModule(ctx context.Context, userID, module string) error {
	_, err := c.post(ctx, "select-module", requestBody{UserID: userID, ModuleName: module})
	return err
}

// FetchQuestion generates one question of the requested type.
func (c *Client) FetchQuestion(ctx context.Context, req quiz.FetchRequest) (*question.Content, error) {
	endpoint := endpointFor(req.Type)

	raw, err := c.post(ctx, endpoint, requestBody{
		UserID:     c.userID,
		Topics:     req.Topics,
		ModuleName: req.Module,
	})
	if err != nil {
		return nil, err
	}

	schema, name := choiceQuestionSchema, "choice-question"
	if req.Type == question.TypeStructured {
		schema, name = structuredQuestionSchema, "structured-question"
	}
	if err := validateBody(endpoint, name, schema, raw); err != nil {
		return nil, err
	}

	var content question.Content
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, &ErrMalformedResponse{Endpoint: endpoint, Err: err}
	}
	return &content, nil
}

func endpointFor(t question.Type) string {
	switch t {
	case question.TypeStructured:
		return "generate-hard-question"
	case question.TypeFillBlank:
		return "generate-fill-in-the-blank"
	default:
		return "get-next-question"
	}
}

// GetDifficultyTest returns the service's prepared placement probe batch.
func (c *Client) GetDifficultyTest(ctx context.Context) ([]question.Content, error) {
	raw, err := c.do(ctx, http.MethodGet, "get-difficulty-test", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		TestQuestions []question.Content `json:"test_questions"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrMalformedResponse{Endpoint: "get-difficulty-test", Err: err}
	}
	if len(resp.TestQuestions) == 0 {
		return nil, &ErrMalformedResponse{Endpoint: "get-difficulty-test", Detail: "empty test_questions"}
	}
	return resp.TestQuestions, nil
}

// EvaluateDifficultyTest submits the probe answers; the service grades them
// and assigns the difficulty level.
func (c *Client) EvaluateDifficultyTest(ctx context.Context, answers map[int]string) (string, error) {
	payload := struct {
		Answers map[int]string `json:"answers"`
	}{answers}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal evaluate-difficulty-test payload: %w", err)
	}
	raw, err := c.postRaw(ctx, "evaluate-difficulty-test", body)
	if err != nil {
		return "", err
	}

	var resp struct {
		DifficultyLevel string `json:"difficulty_level"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &ErrMalformedResponse{Endpoint: "evaluate-difficulty-test", Err: err}
	}
	if resp.DifficultyLevel == "" {
		return "", &ErrMalformedResponse{Endpoint: "evaluate-difficulty-test", Detail: "missing difficulty_level"}
	}
	return resp.DifficultyLevel, nil
}

// ValidateAnswer grades a structured answer server-side.
func (c *Client) ValidateAnswer(ctx context.Context, req quiz.ValidateRequest) (bool, error) {
	raw, err := c.post(ctx, "validate-hard-answer", requestBody{
		UserID:     c.userID,
		Answer:     req.Answer,
		QuestionID: req.Index + 1,
	})
	if err != nil {
		return false, err
	}

	var resp struct {
		IsCorrect bool `json:"isCorrect"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return false, &ErrMalformedResponse{Endpoint: "validate-hard-answer", Err: err}
	}
	return resp.IsCorrect, nil
}

// EvaluateQuiz grades a whole session server-side. It is the remote
// counterpart of the local aggregator, used by subjects that grade on the
// service.
func (c *Client) EvaluateQuiz(ctx context.Context, questions []question.Question, answers map[int]string) (*results.Evaluation, error) {
	payload := struct {
		UserID    string              `json:"user_id"`
		Questions []question.Question `json:"questions"`
		Answers   map[int]string      `json:"answers"`
	}{c.userID, questions, answers}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal evaluate payload: %w", err)
	}
	raw, err := c.postRaw(ctx, "evaluate-quiz", body)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Score      int                `json:"score"`
		Feedback   []results.Feedback `json:"feedback"`
		WeakTopics []string           `json:"weakTopics"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrMalformedResponse{Endpoint: "evaluate-quiz", Err: err}
	}
	return &results.Evaluation{
		Score:      resp.Score,
		Feedback:   resp.Feedback,
		WeakTopics: resp.WeakTopics,
	}, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body requestBody) (json.RawMessage, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", endpoint, err)
	}
	return c.postRaw(ctx, endpoint, b)
}

func (c *Client) postRaw(ctx context.Context, endpoint string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, endpoint, body)
}

// do performs one round trip and applies the error taxonomy: transport or
// non-2xx status is ErrNetwork; a body that fails to decode or carries the
// "detail" error envelope is ErrMalformedResponse.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, c.subject, endpoint)

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, &ErrNetwork{Endpoint: endpoint, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, &ErrNetwork{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrNetwork{Endpoint: endpoint, Err: err}
	}

	c.log.Debug("request done",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrNetwork{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if detail, ok := errorDetail(raw); ok {
		return nil, &ErrMalformedResponse{Endpoint: endpoint, Detail: detail}
	}
	return raw, nil
}

// errorDetail reports whether a 2xx body is the API's error envelope.
func errorDetail(raw []byte) (string, bool) {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Detail == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		return s, true
	}
	return string(env.Detail), true
}

var (
	_ quiz.Source  = (*Client)(nil)
	_ quiz.Starter = (*Client)(nil)
)
