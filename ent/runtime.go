// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ishara/quizdeck/ent/quizresult"
	"github.com/ishara/quizdeck/ent/schema"
	"github.com/ishara/quizdeck/ent/stateblob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescResultID is the schema descriptor for result_id field.
	quizresultDescResultID := quizresultFields[0].Descriptor()
	// quizresult.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	quizresult.ResultIDValidator = quizresultDescResultID.Validators[0].(func(string) error)
	// quizresultDescUserID is the schema descriptor for user_id field.
	quizresultDescUserID := quizresultFields[1].Descriptor()
	// quizresult.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizresult.UserIDValidator = quizresultDescUserID.Validators[0].(func(string) error)
	// quizresultDescSubject is the schema descriptor for subject field.
	quizresultDescSubject := quizresultFields[2].Descriptor()
	// quizresult.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	quizresult.SubjectValidator = quizresultDescSubject.Validators[0].(func(string) error)
	// quizresultDescModule is the schema descriptor for module field.
	quizresultDescModule := quizresultFields[3].Descriptor()
	// quizresult.DefaultModule holds the default value on creation for the module field.
	quizresult.DefaultModule = quizresultDescModule.Default.(string)
	// quizresultDescDifficulty is the schema descriptor for difficulty field.
	quizresultDescDifficulty := quizresultFields[4].Descriptor()
	// quizresult.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	quizresult.DifficultyValidator = quizresultDescDifficulty.Validators[0].(func(string) error)
	// quizresultDescCompletedAt is the schema descriptor for completed_at field.
	quizresultDescCompletedAt := quizresultFields[8].Descriptor()
	// quizresult.DefaultCompletedAt holds the default value on creation for the completed_at field.
	quizresult.DefaultCompletedAt = quizresultDescCompletedAt.Default.(func() time.Time)
	stateblobFields := schema.StateBlob{}.Fields()
	_ = stateblobFields
	// stateblobDescNamespace is the schema descriptor for namespace field.
	stateblobDescNamespace := stateblobFields[0].Descriptor()
	// stateblob.NamespaceValidator is a validator for the "namespace" field. It is called by the builders before save.
	stateblob.NamespaceValidator = stateblobDescNamespace.Validators[0].(func(string) error)
	// stateblobDescUpdatedAt is the schema descriptor for updated_at field.
	stateblobDescUpdatedAt := stateblobFields[2].Descriptor()
	// stateblob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stateblob.DefaultUpdatedAt = stateblobDescUpdatedAt.Default.(func() time.Time)
	// stateblob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stateblob.UpdateDefaultUpdatedAt = stateblobDescUpdatedAt.UpdateDefault.(func() time.Time)
}
