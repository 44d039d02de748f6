// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)

// StateBlob is the predicate function for stateblob builders.
type StateBlob func(*sql.Selector)
