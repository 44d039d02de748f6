package question

import "strings"

// Type discriminates the four question kinds served in a quiz.
type Type string

const (
	// TypeDifficulty is a placement-probe multiple-choice question used to
	// assess the user's level before regular quizzes.
	TypeDifficulty Type = "difficulty"

	// TypeMCQ is a standard multiple-choice question.
	TypeMCQ Type = "mcq"

	// TypeFillBlank is a fill-in-the-blank question answered by picking
	// the missing word/phrase from options.
	TypeFillBlank Type = "fill-in-the-blanks"

	// TypeStructured is a free-text question graded by an external
	// evaluator rather than string comparison.
	TypeStructured Type = "structured"
)

// ChoiceLike reports whether questions of this type carry an option list
// and are graded by comparing the chosen option against the answer.
func (t Type) ChoiceLike() bool {
	switch t {
	case TypeDifficulty, TypeMCQ, TypeFillBlank:
		return true
	}
	return false
}

// Question is a single quiz question. A question whose Prompt is empty is a
// placeholder: a slot reserved by id/type/position whose remaining fields are
// meaningless until content is fetched into it.
type Question struct {
	// ID is the question's position within the session, 1-based.
	ID int `json:"id"`

	// Type discriminates the variant.
	Type Type `json:"type"`

	// Prompt is the question text shown to the user. Empty until fetched.
	Prompt string `json:"question"`

	// Answer is the canonical correct answer. For choice-like types this is
	// the literal text of one option; for structured questions it is the
	// model free-text answer.
	Answer string `json:"answer"`

	// Options is the ordered option list for choice-like types.
	Options []string `json:"options,omitempty"`

	// Topic labels the question for weak-topic extraction.
	Topic string `json:"topic"`

	// Passage is an optional supporting text (e.g. a reading passage).
	Passage string `json:"paragraph,omitempty"`

	// Explanation is an optional worked explanation of the answer.
	Explanation string `json:"explaination,omitempty"`

	// Correct is set only for structured questions, by the external
	// evaluator. Nil means the question was never validated.
	Correct *bool `json:"isCorrect,omitempty"`
}

// Placeholder creates an empty slot for the given position and type.
func Placeholder(id int, t Type) Question {
	return Question{ID: id, Type: t}
}

// Fetched reports whether the question has content. Placeholders are the
// only questions with an empty prompt.
func (q *Question) Fetched() bool {
	return q.Prompt != ""
}

// SetCorrect records the evaluator's verdict for a structured question.
func (q *Question) SetCorrect(correct bool) {
	q.Correct = &correct
}

// Content is the fetched payload used to fill a placeholder in place.
// ID and Type are deliberately absent: they are fixed at session start.
type Content struct {
	Prompt      string
	Answer      string
	Options     []string
	Topic       string
	Passage     string
	Explanation string
}

// Fill replaces the placeholder's content, preserving id and type.
func (q *Question) Fill(c Content) {
	q.Prompt = c.Prompt
	q.Answer = c.Answer
	q.Options = c.Options
	q.Topic = c.Topic
	q.Passage = c.Passage
	q.Explanation = c.Explanation
}

// OptionIndex returns the index of the option matching the canonical answer,
// trying exact match first and falling back to the leading-token rule.
// Returns -1 when no option matches (including non-choice types).
func (q *Question) OptionIndex() int {
	if !q.Type.ChoiceLike() {
		return -1
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == strings.TrimSpace(q.Answer) {
			return i
		}
	}
	for i, opt := range q.Options {
		if LeadingTokenMatch(opt, q.Answer) {
			return i
		}
	}
	return -1
}

// LeadingTokenMatch reports whether two answers share the same leading
// token. Options are commonly labelled ("B. Paris"); users may submit the
// label, the full text, or a re-fetched variant of either, so grading
// compares only the leading token of each. The rule is intentionally loose:
// two distinct options that share a label (or first word) both register as a
// match. Preserved for compatibility with stored results.
func LeadingTokenMatch(a, b string) bool {
	ta, tb := leadingToken(a), leadingToken(b)
	if ta == "" || tb == "" {
		return false
	}
	return strings.EqualFold(ta, tb)
}

// leadingToken extracts the first token of an answer: the run of characters
// before the first separator ('.', ')', or whitespace).
func leadingToken(s string) string {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == '.' || r == ')' || r == ' ' || r == '\t'
	})
	if end == -1 {
		return s
	}
	return s[:end]
}
