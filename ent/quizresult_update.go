// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ishara/quizdeck/ent/predicate"
	"github.com/ishara/quizdeck/ent/quizresult"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdate) SetUserID(v string) *QuizResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableUserID(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuizResultUpdate) SetSubject(v string) *QuizResultUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableSubject(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetModule sets the "module" field.
func (_u *QuizResultUpdate) SetModule(v string) *QuizResultUpdate {
	_u.mutation.SetModule(v)
	return _u
}

// SetNillableModule sets the "module" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableModule(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetModule(*v)
	}
	return _u
}

// ClearModule clears the value of the "module" field.
func (_u *QuizResultUpdate) ClearModule() *QuizResultUpdate {
	_u.mutation.ClearModule()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizResultUpdate) SetDifficulty(v string) *QuizResultUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableDifficulty(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdate) SetScore(v int) *QuizResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableScore(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdate) AddScore(v int) *QuizResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizResultUpdate) SetTotalQuestions(v int) *QuizResultUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTotalQuestions(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizResultUpdate) AddTotalQuestions(v int) *QuizResultUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizResultUpdate) SetStartedAt(v time.Time) *QuizResultUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableStartedAt(v *time.Time) *QuizResultUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizResultUpdate) SetCompletedAt(v time.Time) *QuizResultUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableCompletedAt(v *time.Time) *QuizResultUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *QuizResultUpdate) SetTimeSpentMs(v int64) *QuizResultUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTimeSpentMs(v *int64) *QuizResultUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *QuizResultUpdate) AddTimeSpentMs(v int64) *QuizResultUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizResultUpdate) SetQuestions(v []map[string]interface{}) *QuizResultUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizResultUpdate) AppendQuestions(v []map[string]interface{}) *QuizResultUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizResultUpdate) SetAnswers(v map[string]interface{}) *QuizResultUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *QuizResultUpdate) SetFeedback(v []map[string]interface{}) *QuizResultUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// AppendFeedback appends value to the "feedback" field.
func (_u *QuizResultUpdate) AppendFeedback(v []map[string]interface{}) *QuizResultUpdate {
	_u.mutation.AppendFeedback(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *QuizResultUpdate) SetWeakTopics(v []string) *QuizResultUpdate {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *QuizResultUpdate) AppendWeakTopics(v []string) *QuizResultUpdate {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *QuizResultUpdate) ClearWeakTopics() *QuizResultUpdate {
	_u.mutation.ClearWeakTopics()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdate) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := quizresult.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "QuizResult.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizresult.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizResult.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(quizresult.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Module(); ok {
		_spec.SetField(quizresult.FieldModule, field.TypeString, value)
	}
	if _u.mutation.ModuleCleared() {
		_spec.ClearField(quizresult.FieldModule, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizresult.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizresult.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizresult.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(quizresult.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(quizresult.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quizresult.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizresult.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(quizresult.FieldFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldFeedback, value)
		})
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(quizresult.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(quizresult.FieldWeakTopics, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdateOne) SetUserID(v string) *QuizResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableUserID(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuizResultUpdateOne) SetSubject(v string) *QuizResultUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableSubject(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetModule sets the "module" field.
func (_u *QuizResultUpdateOne) SetModule(v string) *QuizResultUpdateOne {
	_u.mutation.SetModule(v)
	return _u
}

// SetNillableModule sets the "module" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableModule(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetModule(*v)
	}
	return _u
}

// ClearModule clears the value of the "module" field.
func (_u *QuizResultUpdateOne) ClearModule() *QuizResultUpdateOne {
	_u.mutation.ClearModule()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizResultUpdateOne) SetDifficulty(v string) *QuizResultUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableDifficulty(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdateOne) SetScore(v int) *QuizResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableScore(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdateOne) AddScore(v int) *QuizResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizResultUpdateOne) SetTotalQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTotalQuestions(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizResultUpdateOne) AddTotalQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuizResultUpdateOne) SetStartedAt(v time.Time) *QuizResultUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableStartedAt(v *time.Time) *QuizResultUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizResultUpdateOne) SetCompletedAt(v time.Time) *QuizResultUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableCompletedAt(v *time.Time) *QuizResultUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *QuizResultUpdateOne) SetTimeSpentMs(v int64) *QuizResultUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTimeSpentMs(v *int64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *QuizResultUpdateOne) AddTimeSpentMs(v int64) *QuizResultUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizResultUpdateOne) SetQuestions(v []map[string]interface{}) *QuizResultUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizResultUpdateOne) AppendQuestions(v []map[string]interface{}) *QuizResultUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizResultUpdateOne) SetAnswers(v map[string]interface{}) *QuizResultUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *QuizResultUpdateOne) SetFeedback(v []map[string]interface{}) *QuizResultUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// AppendFeedback appends value to the "feedback" field.
func (_u *QuizResultUpdateOne) AppendFeedback(v []map[string]interface{}) *QuizResultUpdateOne {
	_u.mutation.AppendFeedback(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *QuizResultUpdateOne) SetWeakTopics(v []string) *QuizResultUpdateOne {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *QuizResultUpdateOne) AppendWeakTopics(v []string) *QuizResultUpdateOne {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *QuizResultUpdateOne) ClearWeakTopics() *QuizResultUpdateOne {
	_u.mutation.ClearWeakTopics()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResult entity.
func (_u *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := quizresult.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "QuizResult.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizresult.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizResult.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(quizresult.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Module(); ok {
		_spec.SetField(quizresult.FieldModule, field.TypeString, value)
	}
	if _u.mutation.ModuleCleared() {
		_spec.ClearField(quizresult.FieldModule, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizresult.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(quizresult.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizresult.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(quizresult.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(quizresult.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quizresult.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizresult.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(quizresult.FieldFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldFeedback, value)
		})
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(quizresult.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(quizresult.FieldWeakTopics, field.TypeJSON)
	}
	_node = &QuizResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
