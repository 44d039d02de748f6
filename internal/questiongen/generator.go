// Package questiongen generates quiz questions directly through an LLM
// provider. It is the offline counterpart of the remote question service:
// both satisfy the same session-facing interface, selected by configuration.
package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ishara/quizdeck/internal/llm"
	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/quiz"
)

// Config bounds generation requests.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxAskedQuestions caps how many prior prompts the dedup list carries.
	MaxAskedQuestions int
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         1024,
		Temperature:       0.7,
		MaxAskedQuestions: 30,
	}
}

// Generator implements quiz.Source on top of an llm.Provider. It keeps the
// session's asked-question list for dedup and the generated model answers
// for grading, so it is one-per-session like the machine it feeds.
type Generator struct {
	provider llm.Provider
	subject  string
	config   Config

	asked []string
	// modelAnswers maps question index to the generated reference answer.
	modelAnswers map[int]string
	prompts      map[int]string
}

// New creates a Generator for one session.
func New(provider llm.Provider, subject string, cfg Config) *Generator {
	return &Generator{
		provider:     provider,
		subject:      subject,
		config:       cfg,
		modelAnswers: make(map[int]string),
		prompts:      make(map[int]string),
	}
}

// questionOutput is the raw LLM response before mapping.
type questionOutput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	Topic        string   `json:"topic"`
	Paragraph    string   `json:"paragraph"`
	Explaination string   `json:"explaination"`
}

// FetchQuestion generates one question of the requested type.
func (g *Generator) FetchQuestion(ctx context.Context, req quiz.FetchRequest) (*question.Content, error) {
	schema, purpose := MCQSchema, "generate-mcq"
	switch req.Type {
	case question.TypeStructured:
		schema, purpose = StructuredSchema, "generate-structured"
	case question.TypeFillBlank:
		schema, purpose = FillBlankSchema, "generate-fill-blank"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(
				g.subject, req.Module, req.Type, req.Topics, g.asked, g.config.MaxAskedQuestions)},
		},
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate question: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse generated question: %w", err)
	}

	g.asked = append(g.asked, raw.Question)
	g.prompts[req.Index] = raw.Question
	if req.Type == question.TypeStructured {
		g.modelAnswers[req.Index] = raw.Answer
	}

	return &question.Content{
		Prompt:      raw.Question,
		Answer:      raw.Answer,
		Options:     raw.Options,
		Topic:       raw.Topic,
		Passage:     raw.Paragraph,
		Explanation: raw.Explaination,
	}, nil
}

// ValidateAnswer grades a structured answer against the question's generated
// model answer.
func (g *Generator) ValidateAnswer(ctx context.Context, req quiz.ValidateRequest) (bool, error) {
	ctx = llm.WithPurpose(ctx, "validate-structured")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradingPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingMessage(
				g.prompts[req.Index], g.modelAnswers[req.Index], req.Answer)},
		},
		Schema:    VerdictSchema,
		MaxTokens: g.config.MaxTokens,
	})
	if err != nil {
		return false, fmt.Errorf("grade answer: %w", err)
	}

	var verdict struct {
		IsCorrect bool   `json:"isCorrect"`
		Comments  string `json:"comments"`
	}
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return false, fmt.Errorf("parse verdict: %w", err)
	}
	return verdict.IsCorrect, nil
}

var _ quiz.Source = (*Generator)(nil)
