// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QuizResultsColumns holds the columns for the "quiz_results" table.
	QuizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "module", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "time_spent_ms", Type: field.TypeInt64},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "feedback", Type: field.TypeJSON},
		{Name: "weak_topics", Type: field.TypeJSON, Nullable: true},
	}
	// QuizResultsTable holds the schema information for the "quiz_results" table.
	QuizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    QuizResultsColumns,
		PrimaryKey: []*schema.Column{QuizResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresult_result_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[1]},
			},
			{
				Name:    "quizresult_user_id_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[2], QuizResultsColumns[5]},
			},
			{
				Name:    "quizresult_completed_at",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[9]},
			},
			{
				Name:    "quizresult_module",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[4]},
			},
		},
	}
	// StateBlobsColumns holds the columns for the "state_blobs" table.
	StateBlobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "namespace", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StateBlobsTable holds the schema information for the "state_blobs" table.
	StateBlobsTable = &schema.Table{
		Name:       "state_blobs",
		Columns:    StateBlobsColumns,
		PrimaryKey: []*schema.Column{StateBlobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stateblob_namespace",
				Unique:  false,
				Columns: []*schema.Column{StateBlobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuizResultsTable,
		StateBlobsTable,
	}
)

func init() {
}
