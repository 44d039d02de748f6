// Package quiz implements the quiz-session state machine: question
// sequencing, lazy per-question fetch with manual retry, structured-answer
// validation, and completion.
//
// The machine is synchronous and performs no I/O. Transitions return an
// Effect describing the network call the caller must perform; the caller
// feeds the outcome back through ApplyFetch / ApplyValidation. Retry is the
// same transition re-invoked with the same request, not exception recovery.
package quiz

import (
	"time"

	"github.com/ishara/quizdeck/internal/question"
)

// Counts configures how many questions of each type a session serves.
// The blocks are never interleaved: MCQ first, then structured, then
// fill-in-the-blank.
type Counts struct {
	MCQ        int
	Structured int
	FillBlank  int
}

// Total returns the terminal question count for a session.
func (c Counts) Total() int {
	return c.MCQ + c.Structured + c.FillBlank
}

// Phase is the top-level session state.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Completed
)

// Mode distinguishes a live session from reviewing a stored result.
// Review navigation is pure pointer movement: no fetches, no validation.
type Mode int

const (
	ModeLive Mode = iota
	ModeReview
)

// SlotState is the per-question sub-state while the session is InProgress.
type SlotState int

const (
	SlotPlaceholder SlotState = iota
	SlotFetching
	SlotReady
	SlotFetchError
)

// Machine drives a single quiz session. It is not safe for concurrent use;
// the UI event loop serializes all calls.
type Machine struct {
	counts    Counts
	mode      Mode
	phase     Phase
	questions []question.Question
	answers   map[int]string
	slots     []SlotState
	index     int
	busy      bool
	startedAt time.Time
	module    string
	topics    []string
	lastErr   error
	pending   *pendingNav
}

// pendingNav records a navigation that is waiting on a validation round trip.
type pendingNav struct {
	target   int
	complete bool
}

// New creates a live-mode machine for the given per-type counts.
// Module and topics bias question generation on every fetch.
func New(counts Counts, module string, weakTopics []string) *Machine {
	return &Machine{
		counts:  counts,
		mode:    ModeLive,
		phase:   NotStarted,
		answers: make(map[int]string),
		module:  module,
		topics:  weakTopics,
	}
}

// NewReview creates a review-mode machine over a stored result's questions
// and answers. All fetch/validate side effects are disabled.
func NewReview(questions []question.Question, answers map[int]string) *Machine {
	if answers == nil {
		answers = make(map[int]string)
	}
	m := &Machine{
		counts:    Counts{MCQ: len(questions)},
		mode:      ModeReview,
		phase:     InProgress,
		questions: questions,
		answers:   answers,
	}
	m.slots = make([]SlotState, len(questions))
	for i := range questions {
		if questions[i].Fetched() {
			m.slots[i] = SlotReady
		}
	}
	return m
}

// Start builds the ordered placeholder sequence, resets the answer map, and
// records the start time. It returns the fetch effect for the first question.
func (m *Machine) Start(now time.Time) Effect {
	if m.phase != NotStarted || m.mode != ModeLive {
		return nil
	}

	total := m.counts.Total()
	m.questions = make([]question.Question, 0, total)
	for i := 0; i < m.counts.MCQ; i++ {
		m.questions = append(m.questions, question.Placeholder(len(m.questions)+1, question.TypeMCQ))
	}
	for i := 0; i < m.counts.Structured; i++ {
		m.questions = append(m.questions, question.Placeholder(len(m.questions)+1, question.TypeStructured))
	}
	for i := 0; i < m.counts.FillBlank; i++ {
		m.questions = append(m.questions, question.Placeholder(len(m.questions)+1, question.TypeFillBlank))
	}

	m.slots = make([]SlotState, total)
	m.answers = make(map[int]string)
	m.startedAt = now
	m.index = 0
	m.phase = InProgress

	return m.Fetch(0)
}

// Resume restores an in-progress session from persisted state, e.g. after a
// process restart mid-quiz. Sequence length stays fixed; fetched questions
// come back Ready, the rest stay placeholders.
func (m *Machine) Resume(questions []question.Question, answers map[int]string, startedAt time.Time) Effect {
	if m.phase != NotStarted || m.mode != ModeLive {
		return nil
	}
	if len(questions) != m.counts.Total() {
		return nil
	}

	m.questions = questions
	if answers != nil {
		m.answers = answers
	}
	m.startedAt = startedAt
	m.slots = make([]SlotState, len(questions))
	for i := range questions {
		if questions[i].Fetched() {
			m.slots[i] = SlotReady
		}
	}
	m.index = 0
	m.phase = InProgress

	if m.slots[0] != SlotReady {
		return m.Fetch(0)
	}
	return nil
}

// Fetch requests content for the question at index. It is a no-op unless the
// session is in progress, no other request is in flight, and the slot is a
// placeholder or a failed fetch (manual retry re-enters here).
func (m *Machine) Fetch(index int) Effect {
	if m.phase != InProgress || m.mode != ModeLive || m.busy {
		return nil
	}
	if index < 0 || index >= len(m.slots) {
		return nil
	}
	if m.slots[index] != SlotPlaceholder && m.slots[index] != SlotFetchError {
		return nil
	}

	m.slots[index] = SlotFetching
	m.busy = true
	m.lastErr = nil

	return FetchEffect{Req: FetchRequest{
		Index:  index,
		Type:   m.questions[index].Type,
		Module: m.module,
		Topics: m.topics,
	}}
}

// ApplyFetch records the outcome of a fetch request. On success the
// placeholder is filled in place, preserving id and type. On failure the
// slot enters FetchError and waits for a manual retry.
func (m *Machine) ApplyFetch(index int, content *question.Content, err error) {
	if index < 0 || index >= len(m.slots) || m.slots[index] != SlotFetching {
		return
	}
	m.busy = false
	if err != nil {
		m.slots[index] = SlotFetchError
		m.lastErr = err
		return
	}
	m.questions[index].Fill(*content)
	m.slots[index] = SlotReady
}

// Answer records the user's answer for the current question. An empty
// string removes the entry: absent key means unanswered.
func (m *Machine) Answer(text string) {
	if m.phase != InProgress || m.mode == ModeReview {
		return
	}
	id := m.questions[m.index].ID
	if text == "" {
		delete(m.answers, id)
		return
	}
	m.answers[id] = text
}

// Advance moves to the next question. A per-question countdown expiring
// forces the same transition. Advancing past the last question completes
// the session.
func (m *Machine) Advance() Effect {
	return m.navigate(m.index+1, m.index+1 >= len(m.questions))
}

// Retreat moves to the previous question.
func (m *Machine) Retreat() Effect {
	if m.index == 0 {
		return nil
	}
	return m.navigate(m.index-1, false)
}

// Jump navigates directly to target (from the navigation panel). The same
// validate-before-leave rule as Advance/Retreat applies.
func (m *Machine) Jump(target int) Effect {
	if target < 0 || target >= len(m.questions) || target == m.index {
		return nil
	}
	return m.navigate(target, false)
}

// Finish ends the session immediately with whatever answers exist.
// Unanswered questions are scored as incorrect by the aggregator; nothing
// blocks completion.
func (m *Machine) Finish() Effect {
	if m.phase != InProgress {
		return nil
	}
	if m.mode == ModeReview {
		return ExitReviewEffect{}
	}
	if m.busy {
		return nil
	}
	if eff := m.validateBeforeLeaving(m.index, true); eff != nil {
		return eff
	}
	return m.complete()
}

// navigate applies the validate-before-leave rule, then either completes the
// session or moves the pointer, fetching the target if it is still empty.
func (m *Machine) navigate(target int, completes bool) Effect {
	if m.phase != InProgress {
		return nil
	}

	if m.mode == ModeReview {
		if completes {
			return ExitReviewEffect{}
		}
		m.index = target
		return nil
	}

	if m.busy {
		return nil
	}

	if eff := m.validateBeforeLeaving(target, completes); eff != nil {
		return eff
	}

	if completes {
		return m.complete()
	}
	return m.moveTo(target)
}

// validateBeforeLeaving returns a validation effect when the current
// question is structured, fetched, and not yet graded. The interrupted
// navigation is recorded and resumed by ApplyValidation.
func (m *Machine) validateBeforeLeaving(target int, completes bool) Effect {
	q := &m.questions[m.index]
	if q.Type != question.TypeStructured || !q.Fetched() || q.Correct != nil {
		return nil
	}

	m.busy = true
	m.pending = &pendingNav{target: target, complete: completes}
	return ValidateEffect{Req: ValidateRequest{
		Index:  m.index,
		Answer: m.answers[q.ID],
	}}
}

// ApplyValidation records the evaluator's verdict and resumes the pending
// navigation. A failed validation leaves the question ungraded — it degrades
// to incorrect at aggregation — and never blocks the move.
func (m *Machine) ApplyValidation(index int, correct bool, err error) Effect {
	if m.pending == nil || index != m.index {
		return nil
	}
	m.busy = false
	if err == nil {
		m.questions[index].SetCorrect(correct)
	}

	nav := m.pending
	m.pending = nil

	if nav.complete {
		return m.complete()
	}
	return m.moveTo(nav.target)
}

func (m *Machine) moveTo(target int) Effect {
	m.index = target
	if m.slots[target] == SlotPlaceholder {
		return m.Fetch(target)
	}
	return nil
}

func (m *Machine) complete() Effect {
	m.phase = Completed
	answers := make(map[int]string, len(m.answers))
	for k, v := range m.answers {
		answers[k] = v
	}
	return CompleteEffect{Answers: answers}
}

// Index returns the current question pointer.
func (m *Machine) Index() int { return m.index }

// Phase returns the top-level session state.
func (m *Machine) Phase() Phase { return m.phase }

// Mode returns whether this is a live or review session.
func (m *Machine) Mode() Mode { return m.mode }

// Busy reports whether a fetch or validation is in flight. Navigation
// controls are disabled while busy, keeping requests one-at-a-time.
func (m *Machine) Busy() bool { return m.busy }

// Current returns the question under the pointer.
func (m *Machine) Current() *question.Question {
	if len(m.questions) == 0 {
		return nil
	}
	return &m.questions[m.index]
}

// Questions returns the full sequence. The slice is the machine's own;
// callers must not mutate it.
func (m *Machine) Questions() []question.Question { return m.questions }

// Answers returns the live answer map keyed by question id.
func (m *Machine) Answers() map[int]string { return m.answers }

// Slot returns the sub-state of the question at index.
func (m *Machine) Slot(index int) SlotState {
	if index < 0 || index >= len(m.slots) {
		return SlotPlaceholder
	}
	return m.slots[index]
}

// StartedAt returns the session start time.
func (m *Machine) StartedAt() time.Time { return m.startedAt }

// LastFetchError returns the error from the most recent failed fetch, for
// display next to the retry control.
func (m *Machine) LastFetchError() error { return m.lastErr }

// Total returns the terminal question count.
func (m *Machine) Total() int { return len(m.questions) }

// AnswerFor returns the recorded answer for a question id.
func (m *Machine) AnswerFor(id int) (string, bool) {
	a, ok := m.answers[id]
	return a, ok
}
