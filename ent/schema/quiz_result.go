package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResult is one completed session's permanent record. Scalar fields are
// what list and leaderboard queries filter on; the question sequence, answer
// map, and feedback travel as JSON documents.
type QuizResult struct {
	ent.Schema
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Caller-visible UUID, assigned at save time"),
		field.String("user_id").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.String("module").
			Optional().
			Default(""),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Int("score"),
		field.Int("total_questions"),
		field.Time("started_at"),
		field.Time("completed_at").
			Default(time.Now),
		field.Int64("time_spent_ms").
			Comment("Session duration in milliseconds"),
		field.JSON("questions", []map[string]any{}).
			Comment("Full question sequence as served, placeholders included"),
		field.JSON("answers", map[string]any{}).
			Comment("Sparse answer map keyed by question id"),
		field.JSON("feedback", []map[string]any{}).
			Comment("Per-question grading, padded to the configured count"),
		field.JSON("weak_topics", []string{}).
			Optional(),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("result_id"),
		index.Fields("user_id", "difficulty"),
		index.Fields("completed_at"),
		index.Fields("module"),
	}
}
