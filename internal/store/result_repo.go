package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ishara/quizdeck/ent"
	"github.com/ishara/quizdeck/ent/quizresult"
	"github.com/ishara/quizdeck/internal/question"
	"github.com/ishara/quizdeck/internal/results"
)

const defaultListLimit = 20

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Save(ctx context.Context, res *results.Result) (string, error) {
	id := uuid.NewString()

	questions, err := toDocSlice(res.Questions)
	if err != nil {
		return "", fmt.Errorf("marshal questions: %w", err)
	}
	feedback, err := toDocSlice(res.Feedback)
	if err != nil {
		return "", fmt.Errorf("marshal feedback: %w", err)
	}
	answers := make(map[string]any, len(res.Answers))
	for qid, a := range res.Answers {
		answers[strconv.Itoa(qid)] = a
	}

	_, err = r.client.QuizResult.Create().
		SetResultID(id).
		SetUserID(res.UserID).
		SetSubject(res.Subject).
		SetModule(res.Module).
		SetDifficulty(res.Difficulty).
		SetScore(res.Score).
		SetTotalQuestions(res.TotalQuestions).
		SetStartedAt(res.StartedAt).
		SetCompletedAt(res.CompletedAt).
		SetTimeSpentMs(res.TimeSpent.Milliseconds()).
		SetQuestions(questions).
		SetAnswers(SanitizeMap(answers)).
		SetFeedback(feedback).
		SetWeakTopics(res.WeakTopics).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}
	return id, nil
}

func (r *resultRepo) GetByID(ctx context.Context, id string) (*results.Result, error) {
	row, err := r.client.QuizResult.Query().
		Where(quizresult.ResultID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("query result %s: %w", id, err)
	}
	return rowToResult(row)
}

func (r *resultRepo) ListRecent(ctx context.Context, opts ListOpts) ([]*results.Result, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	q := r.client.QuizResult.Query().
		Where(quizresult.UserID(opts.UserID))
	if opts.Subject != "" {
		q = q.Where(quizresult.Subject(opts.Subject))
	}
	if opts.Difficulty != "" {
		q = q.Where(quizresult.Difficulty(opts.Difficulty))
	}
	if opts.Module != "" {
		q = q.Where(quizresult.Module(opts.Module))
	}

	rows, err := q.
		Order(ent.Desc(quizresult.FieldCompletedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]*results.Result, 0, len(rows))
	for _, row := range rows {
		res, err := rowToResult(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *resultRepo) Leaderboard(ctx context.Context, subject, difficulty string, limit int) ([]results.LeaderboardEntry, error) {
	// Insertion order matters for ties, so rows come back oldest-first and
	// ranking happens in memory.
	rows, err := r.client.QuizResult.Query().
		Where(
			quizresult.Subject(subject),
			quizresult.Difficulty(difficulty),
		).
		Order(ent.Asc(quizresult.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}

	userIDs := make([]string, len(rows))
	scores := make([]int, len(rows))
	for i, row := range rows {
		userIDs[i] = row.UserID
		scores[i] = row.Score
	}
	return results.RankUsers(userIDs, scores, limit), nil
}

func (r *resultRepo) Averages(ctx context.Context, userID, subject, difficulty string) (*results.Stats, error) {
	rows, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(userID),
			quizresult.Subject(subject),
			quizresult.Difficulty(difficulty),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query averages: %w", err)
	}

	stats := &results.Stats{}
	if len(rows) == 0 {
		return stats, nil
	}

	stats.TotalQuizzes = len(rows)
	stats.LowestScore = rows[0].Score
	for _, row := range rows {
		stats.TotalCorrectAnswers += row.Score
		stats.TotalDuration += row.TimeSpentMs
		if row.Score > stats.HighestScore {
			stats.HighestScore = row.Score
		}
		if row.Score < stats.LowestScore {
			stats.LowestScore = row.Score
		}
	}
	n := float64(len(rows))
	stats.AverageScore = float64(stats.TotalCorrectAnswers) / n
	stats.AverageDuration = float64(stats.TotalDuration) / n
	stats.AverageCorrectAnswers = stats.AverageScore
	return stats, nil
}

// toDocSlice converts a struct slice to the []map[string]any shape of the
// JSON document columns, sanitized for storage.
func toDocSlice(v any) ([]map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var docs []map[string]any
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, err
	}
	for i, d := range docs {
		docs[i] = SanitizeMap(d)
	}
	return docs, nil
}

// rowToResult converts an ent row back into the domain Result.
func rowToResult(row *ent.QuizResult) (*results.Result, error) {
	var questions []question.Question
	if err := fromDoc(row.Questions, &questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	var feedback []results.Feedback
	if err := fromDoc(row.Feedback, &feedback); err != nil {
		return nil, fmt.Errorf("unmarshal feedback: %w", err)
	}

	answers := make(map[int]string, len(row.Answers))
	for k, v := range row.Answers {
		qid, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		if s, ok := v.(string); ok {
			answers[qid] = s
		}
	}

	return &results.Result{
		ID:             row.ResultID,
		UserID:         row.UserID,
		Subject:        row.Subject,
		Module:         row.Module,
		Difficulty:     row.Difficulty,
		Score:          row.Score,
		TotalQuestions: row.TotalQuestions,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
		TimeSpent:      time.Duration(row.TimeSpentMs) * time.Millisecond,
		Questions:      questions,
		Answers:        answers,
		Feedback:       feedback,
		WeakTopics:     row.WeakTopics,
	}, nil
}

func fromDoc(doc any, out any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
