package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ishara/quizdeck/internal/app"
	"github.com/ishara/quizdeck/internal/config"
	"github.com/ishara/quizdeck/internal/llm"
	"github.com/ishara/quizdeck/internal/logging"
	"github.com/ishara/quizdeck/internal/questiongen"
	quizm "github.com/ishara/quizdeck/internal/quiz"
	"github.com/ishara/quizdeck/internal/quizapi"
	"github.com/ishara/quizdeck/internal/results"
	"github.com/ishara/quizdeck/internal/screens/home"
	quizscreen "github.com/ishara/quizdeck/internal/screens/quiz"
	"github.com/ishara/quizdeck/internal/state"
	"github.com/ishara/quizdeck/internal/store"
)

// runApp loads configuration, opens the store, builds the question source,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	quizState := state.NewQuizState(st.State())
	if err := quizState.Hydrate(ctx); err != nil {
		return err
	}
	userState := state.NewUserState(st.State())
	if err := userState.Hydrate(ctx); err != nil {
		return err
	}

	// Stored preferences override file/env configuration: the placement
	// test writes the assigned difficulty here.
	subject := cfg.Subject
	difficulty := cfg.Difficulty
	module := ""
	if doc := userState.Doc(); doc.UserID != "" || doc.Subject != "" || doc.Difficulty != "" {
		if doc.Subject != "" {
			subject = doc.Subject
		}
		if doc.Difficulty != "" {
			difficulty = doc.Difficulty
		}
		module = doc.Module
	}

	source, starter, evaluator, err := buildSource(ctx, cfg, subject, log)
	if err != nil {
		return err
	}

	log.Info("starting",
		zap.String("source", cfg.Source),
		zap.String("subject", subject),
		zap.String("difficulty", difficulty))

	opts := home.Options{
		Quiz: quizscreen.Options{
			Counts: quizm.Counts{
				MCQ:        cfg.Counts.MCQ,
				Structured: cfg.Counts.Structured,
				FillBlank:  cfg.Counts.FillBlank,
			},
			QuestionSeconds: cfg.QuestionSeconds,
			UserID:          cfg.UserID,
			Subject:         subject,
			Difficulty:      difficulty,
			Module:          module,
			Source:          source,
			Starter:         starter,
			Evaluator:       evaluator,
			Results:         st.Results(),
			State:           quizState,
			Log:             log,
		},
		User: userState,
	}

	return app.Run(opts)
}

// buildSource constructs the question source and matching evaluator for the
// configured backend.
func buildSource(ctx context.Context, cfg *config.Config, subject string, log *zap.Logger) (quizm.Source, quizm.Starter, results.Evaluator, error) {
	switch cfg.Source {
	case "api":
		client := quizapi.New(cfg.APIBaseURL, subject, cfg.UserID, log)
		return client, client, quizapi.RemoteEvaluator{Client: client}, nil

	case "llm":
		llmCfg, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM API key found.")
			fmt.Fprintln(os.Stderr, "Set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY,")
			fmt.Fprintln(os.Stderr, "or point QUIZDECK_SOURCE=api at a question service.")
			return nil, nil, nil, fmt.Errorf("no LLM provider configured")
		}
		provider, err := llm.NewProvider(ctx, llmCfg, log)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("init LLM provider: %w", err)
		}
		gen := questiongen.New(provider, subject, questiongen.DefaultConfig())
		return gen, nil, results.Aggregator{}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown question source: %q", cfg.Source)
	}
}
