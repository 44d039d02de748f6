// Package quiz is the session screen: it drives the state machine, executes
// its effects against the question source, and runs the completion pipeline.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/ishara/quizdeck/internal/question"
	quizm "github.com/ishara/quizdeck/internal/quiz"
	"github.com/ishara/quizdeck/internal/results"
	"github.com/ishara/quizdeck/internal/router"
	"github.com/ishara/quizdeck/internal/screen"
	"github.com/ishara/quizdeck/internal/screens/result"
	"github.com/ishara/quizdeck/internal/state"
	"github.com/ishara/quizdeck/internal/store"
	"github.com/ishara/quizdeck/internal/ui/components"
	"github.com/ishara/quizdeck/internal/ui/layout"
)

// Options carries everything a live session needs.
type Options struct {
	Counts quizm.Counts

	// QuestionSeconds is the per-question countdown; 0 disables it.
	QuestionSeconds int

	UserID     string
	Subject    string
	Difficulty string
	Module     string

	Source    quizm.Source
	Starter   quizm.Starter // optional
	Evaluator results.Evaluator
	Results   store.ResultRepo
	State     *state.QuizState
	Log       *zap.Logger
}

// QuizScreen runs one session, live or in review mode.
type QuizScreen struct {
	opts    Options
	machine *quizm.Machine
	review  bool

	input     components.TextInput
	choice    int
	panel     bool
	panelIdx  int
	remaining int
	scoring   bool
	status    string
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a live session screen. The machine is built once the
// server-side session is open, so weak topics from the latest result can
// bias generation.
func New(opts Options) *QuizScreen {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &QuizScreen{
		opts:  opts,
		input: components.NewTextInput("Type your answer...", 0),
	}
}

// NewReview creates a read-only walk over a stored result's questions.
func NewReview(res *results.Result) *QuizScreen {
	return &QuizScreen{
		machine: quizm.NewReview(res.Questions, res.Answers),
		review:  true,
	}
}

func (s *QuizScreen) Title() string {
	if s.review {
		return "Review"
	}
	return "Quiz"
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.review {
		return nil
	}
	return tea.Batch(s.startCmd(), s.input.Init())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.review {
		return []layout.KeyHint{
			{Key: "←→", Description: "Navigate"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.panel {
		return []layout.KeyHint{
			{Key: "←→", Description: "Pick question"},
			{Key: "Enter", Description: "Jump"},
			{Key: "Tab", Description: "Close panel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer & next"},
		{Key: "←", Description: "Previous"},
		{Key: "Tab", Description: "Panel"},
		{Key: "Ctrl+F", Description: "Finish"},
		{Key: "Esc", Description: "Pause"},
	}
}

// startCmd opens the server-side session and collects weak topics from the
// most recent stored result.
func (s *QuizScreen) startCmd() tea.Cmd {
	opts := s.opts
	return func() tea.Msg {
		ctx := context.Background()

		if opts.Starter != nil {
			if err := opts.Starter.StartQuiz(ctx, opts.UserID); err != nil {
				return startedMsg{Err: err}
			}
			if opts.Module != "" {
				if err := opts.Starter.SelectModule(ctx, opts.UserID, opts.Module); err != nil {
					return startedMsg{Err: err}
				}
			}
		}

		var topics []string
		if opts.Results != nil {
			recent, err := opts.Results.ListRecent(ctx, store.ListOpts{
				UserID:     opts.UserID,
				Subject:    opts.Subject,
				Difficulty: opts.Difficulty,
				Module:     opts.Module,
				Limit:      1,
			})
			if err == nil && len(recent) > 0 {
				topics = recent[0].WeakTopics
			}
		}

		return startedMsg{WeakTopics: topics}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)
	case fetchDoneMsg:
		return s.handleFetchDone(msg)
	case validateDoneMsg:
		return s.handleValidateDone(msg)
	case completedMsg:
		return s.handleCompleted(msg)
	case countdownTickMsg:
		return s.handleCountdownTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.textInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.machine = quizm.New(s.opts.Counts, s.opts.Module, msg.WeakTopics)

	var eff quizm.Effect
	doc := s.opts.State.Doc()
	if s.opts.State.Hydrated() && !s.opts.State.Empty() &&
		len(doc.Questions) == s.opts.Counts.Total() {
		eff = s.machine.Resume(doc.Questions, doc.Answers, doc.StartedAt)
	} else {
		eff = s.machine.Start(time.Now())
	}

	s.persist()
	s.syncInputs()
	return s, tea.Batch(s.execEffect(eff), s.tickCmd())
}

func (s *QuizScreen) handleFetchDone(msg fetchDoneMsg) (screen.Screen, tea.Cmd) {
	if s.machine == nil {
		return s, nil
	}
	s.machine.ApplyFetch(msg.Index, msg.Content, msg.Err)
	if msg.Err != nil {
		s.status = msg.Err.Error()
		return s, nil
	}
	s.status = ""
	s.persist()
	if msg.Index == s.machine.Index() {
		s.syncInputs()
	}
	return s, nil
}

func (s *QuizScreen) handleValidateDone(msg validateDoneMsg) (screen.Screen, tea.Cmd) {
	if s.machine == nil {
		return s, nil
	}
	eff := s.machine.ApplyValidation(msg.Index, msg.Correct, msg.Err)
	s.persist()
	s.syncInputs()
	return s, s.execEffect(eff)
}

func (s *QuizScreen) handleCompleted(msg completedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.scoring = false
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	res := msg.Result
	repo := s.opts.Results
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result.New(res, repo, reviewScreen)}
	}
}

// reviewScreen is the review-mode factory handed to the result screen.
func reviewScreen(r *results.Result) screen.Screen {
	return NewReview(r)
}

func (s *QuizScreen) handleCountdownTick() (screen.Screen, tea.Cmd) {
	if s.review || s.scoring || s.errMsg != "" || s.machine == nil {
		return s, nil
	}
	if s.opts.QuestionSeconds <= 0 {
		return s, nil
	}

	idx := s.machine.Index()
	if s.machine.Slot(idx) == quizm.SlotReady && !s.machine.Busy() && !s.panel {
		s.remaining--
		if s.remaining <= 0 {
			// Time's up: move on with whatever answer is recorded.
			s.commitAnswer()
			eff := s.machine.Advance()
			return s, tea.Batch(s.execEffect(eff), s.tickCmd())
		}
	}
	return s, s.tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.machine == nil || s.scoring {
		return s, nil
	}

	if s.review {
		return s.handleReviewKey(key)
	}

	if s.panel {
		return s.handlePanelKey(key)
	}

	switch key {
	case "tab":
		s.panel = true
		s.panelIdx = s.machine.Index()
		return s, nil
	case "ctrl+f":
		s.commitAnswer()
		return s, s.execEffect(s.machine.Finish())
	case "left":
		s.commitAnswer()
		eff := s.machine.Retreat()
		s.syncInputs()
		return s, s.execEffect(eff)
	case "right":
		s.commitAnswer()
		eff := s.machine.Advance()
		s.syncInputs()
		return s, s.execEffect(eff)
	case "r":
		if s.machine.Slot(s.machine.Index()) == quizm.SlotFetchError {
			s.status = ""
			return s, s.execEffect(s.machine.Fetch(s.machine.Index()))
		}
	}

	q := s.machine.Current()
	if q == nil || s.machine.Slot(s.machine.Index()) != quizm.SlotReady {
		return s, nil
	}

	if q.Type.ChoiceLike() {
		return s.handleChoiceKey(key, q)
	}
	return s.handleStructuredKey(key, msg)
}

func (s *QuizScreen) handleChoiceKey(key string, q *question.Question) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.choice > 0 {
			s.choice--
		}
		return s, nil
	case "down", "j":
		if s.choice < len(q.Options)-1 {
			s.choice++
		}
		return s, nil
	case "enter":
		return s.recordChoiceAndAdvance(q, s.choice)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i < len(q.Options) {
			s.choice = i
			return s.recordChoiceAndAdvance(q, i)
		}
	}
	return s, nil
}

func (s *QuizScreen) recordChoiceAndAdvance(q *question.Question, i int) (screen.Screen, tea.Cmd) {
	s.machine.Answer(q.Options[i])
	eff := s.machine.Advance()
	s.persist()
	s.syncInputs()
	return s, s.execEffect(eff)
}

func (s *QuizScreen) handleStructuredKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key == "enter" {
		s.commitAnswer()
		eff := s.machine.Advance()
		s.persist()
		s.syncInputs()
		return s, s.execEffect(eff)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handlePanelKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "left", "h":
		if s.panelIdx > 0 {
			s.panelIdx--
		}
	case "right", "l":
		if s.panelIdx < s.machine.Total()-1 {
			s.panelIdx++
		}
	case "enter":
		s.panel = false
		s.commitAnswer()
		eff := s.machine.Jump(s.panelIdx)
		s.syncInputs()
		return s, s.execEffect(eff)
	case "tab", "esc":
		s.panel = false
	}
	return s, nil
}

func (s *QuizScreen) handleReviewKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "left", "h":
		s.machine.Retreat()
	case "right", "l", "enter":
		eff := s.machine.Advance()
		if _, ok := eff.(quizm.ExitReviewEffect); ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// commitAnswer records the typed answer for the current structured question.
// Choice answers are recorded at selection time.
func (s *QuizScreen) commitAnswer() {
	q := s.machine.Current()
	if q == nil || q.Type.ChoiceLike() || !q.Fetched() {
		return
	}
	s.machine.Answer(s.input.Value())
	s.persist()
}

// syncInputs restores the cursor / typed text for the question under the
// pointer and resets the countdown.
func (s *QuizScreen) syncInputs() {
	s.remaining = s.opts.QuestionSeconds
	q := s.machine.Current()
	if q == nil {
		return
	}
	answer, _ := s.machine.AnswerFor(q.ID)
	if q.Type.ChoiceLike() {
		s.choice = 0
		for i, opt := range q.Options {
			if opt == answer {
				s.choice = i
				break
			}
		}
		return
	}
	s.input = components.NewTextInput("Type your answer...", 0)
	s.input.SetValue(answer)
}

// persist writes the machine's state through the session store, so a killed
// process resumes where it left off.
func (s *QuizScreen) persist() {
	if s.review || s.opts.State == nil || s.machine == nil {
		return
	}
	err := s.opts.State.Set(context.Background(), state.QuizDoc{
		Questions: s.machine.Questions(),
		Answers:   s.machine.Answers(),
		StartedAt: s.machine.StartedAt(),
		Module:    s.opts.Module,
	})
	if err != nil {
		s.opts.Log.Warn("persist session", zap.Error(err))
	}
}

// execEffect turns a machine effect into the async command that performs it.
func (s *QuizScreen) execEffect(eff quizm.Effect) tea.Cmd {
	switch e := eff.(type) {
	case quizm.FetchEffect:
		src := s.opts.Source
		req := e.Req
		return func() tea.Msg {
			content, err := src.FetchQuestion(context.Background(), req)
			return fetchDoneMsg{Index: req.Index, Content: content, Err: err}
		}
	case quizm.ValidateEffect:
		src := s.opts.Source
		req := e.Req
		return func() tea.Msg {
			correct, err := src.ValidateAnswer(context.Background(), req)
			return validateDoneMsg{Index: req.Index, Correct: correct, Err: err}
		}
	case quizm.CompleteEffect:
		s.scoring = true
		return s.completeCmd(e.Answers)
	case quizm.ExitReviewEffect:
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

// completeCmd runs the completion pipeline: evaluate, build the result,
// persist it, clear the in-progress session.
func (s *QuizScreen) completeCmd(answers map[int]string) tea.Cmd {
	opts := s.opts
	questions := s.machine.Questions()
	startedAt := s.machine.StartedAt()
	total := s.machine.Total()

	return func() tea.Msg {
		ctx := context.Background()

		ev, err := opts.Evaluator.Evaluate(ctx, questions, answers, total)
		if err != nil {
			return completedMsg{Err: err}
		}

		res := results.Build(opts.UserID, opts.Subject, opts.Module, opts.Difficulty,
			questions, answers, ev, startedAt, time.Now())

		if opts.Results != nil {
			id, err := opts.Results.Save(ctx, res)
			if err != nil {
				return completedMsg{Err: err}
			}
			res.ID = id
		}

		if opts.State != nil {
			if err := opts.State.Clear(ctx); err != nil {
				opts.Log.Warn("clear session", zap.Error(err))
			}
		}

		return completedMsg{Result: res}
	}
}

func (s *QuizScreen) textInputActive() bool {
	if s.review || s.panel || s.machine == nil {
		return false
	}
	q := s.machine.Current()
	return q != nil && !q.Type.ChoiceLike() && q.Fetched() &&
		s.machine.Slot(s.machine.Index()) == quizm.SlotReady
}

func (s *QuizScreen) tickCmd() tea.Cmd {
	if s.opts.QuestionSeconds <= 0 {
		return nil
	}
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}
