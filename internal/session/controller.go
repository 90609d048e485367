package session

import (
	"time"

	"github.com/google/uuid"

	"quizdeck/internal/quiz"
	"quizdeck/internal/scoring"
)

// Callbacks are the notifications a caller can subscribe to. Every field
// is optional; nil callbacks are skipped. They fire synchronously from
// within the transition that caused them.
type Callbacks struct {
	// OnIndexChanged fires when a question is loaded, including
	// question 0 at session start.
	OnIndexChanged func(index int)

	// OnScoreChanged fires when the score increases. Doubles as the
	// "+20 XP" pulse trigger for the presentation layer.
	OnScoreChanged func(score int)

	// OnStreakChanged fires when the in-session streak changes value.
	OnStreakChanged func(streak int)

	// OnComplete fires exactly once per session, at the transition
	// into PhaseFinished.
	OnComplete func(score int, accuracy float64)
}

// Controller is the session state machine. It is synchronous and owns no
// timer: the caller drives the countdown by invoking Tick once per second
// while Playing, and stops ticking on any exit from Playing.
//
// Out-of-protocol calls (selecting when already answered, advancing when
// unanswered, any transition the current phase does not permit) are
// defined no-ops, so stale UI event handlers cannot corrupt the state.
type Controller struct {
	state State
	cb    Callbacks
	final *Result
}

// NewController creates an idle controller.
func NewController(cb Callbacks) *Controller {
	return &Controller{
		state: State{Phase: PhaseIdle},
		cb:    cb,
	}
}

// Start begins a session over the given questions. The only hard failure
// in the engine: an empty or malformed question list is rejected with a
// *quiz.ValidationError and the controller stays Idle. Calling Start
// while a session is live is a no-op.
func (c *Controller) Start(questions []quiz.Question) error {
	if c.state.Phase != PhaseIdle {
		return nil
	}
	if err := quiz.ValidateDeck(questions); err != nil {
		return err
	}

	c.final = nil
	c.state = State{
		Phase:         PhasePlaying,
		Questions:     questions,
		TimeRemaining: QuestionSeconds,
		SessionID:     uuid.New().String(),
		StartedAt:     time.Now(),
	}
	c.notifyIndex()
	return nil
}

// SelectOption records the player's answer for the current question.
// Only the first selection per question counts; repeats and selections
// after a timeout are no-ops, as are unknown option ids.
func (c *Controller) SelectOption(optionID string) {
	if c.state.Phase != PhasePlaying || c.state.Answered {
		return
	}
	q := c.state.CurrentQuestion()
	if q == nil || q.Option(optionID) == nil {
		return
	}

	c.state.SelectedOptionID = optionID
	c.state.Answered = true

	if scoring.IsCorrect(q, optionID) {
		c.state.Score += scoring.PointsForAnswer(true)
		c.state.CorrectCount++
		c.state.Streak++
		c.notifyScore()
		c.notifyStreak()
	} else {
		c.resetStreak()
	}
}

// Tick decrements the countdown by one second, floored at zero. When the
// countdown reaches zero with the question still unanswered, the question
// is closed as a timeout: no option selected, streak reset, no score
// change. A tick arriving after the question was answered never reapplies
// the penalty. Outside Playing, Tick is a no-op.
func (c *Controller) Tick() {
	if c.state.Phase != PhasePlaying {
		return
	}
	if c.state.TimeRemaining > 0 {
		c.state.TimeRemaining--
	}
	if c.state.TimeRemaining == 0 && !c.state.Answered {
		c.state.Answered = true
		c.state.SelectedOptionID = ""
		c.state.TimedOut = true
		c.resetStreak()
	}
}

// Advance moves past the current answered question. On the last question
// it finishes the session: the final result is frozen and OnComplete
// fires exactly once. Calling Advance while unanswered, or again after
// the session finished, is a no-op.
func (c *Controller) Advance() {
	if c.state.Phase != PhasePlaying || !c.state.Answered {
		return
	}

	if c.state.OnLastQuestion() {
		c.finish()
		return
	}

	c.state.CurrentIndex++
	c.state.SelectedOptionID = ""
	c.state.Answered = false
	c.state.TimedOut = false
	c.state.TimeRemaining = QuestionSeconds
	c.notifyIndex()
}

// Quit abandons the live session and returns the score earned so far,
// for partial XP credit. The session state is discarded. Outside Playing
// it is a no-op returning zero.
func (c *Controller) Quit() int {
	if c.state.Phase != PhasePlaying {
		return 0
	}
	score := c.state.Score
	c.reset()
	return score
}

// TryAgain discards the finished result and returns to Idle, ready for a
// fresh Start. No-op unless the session is Finished.
func (c *Controller) TryAgain() {
	if c.state.Phase != PhaseFinished {
		return
	}
	c.reset()
}

// Snapshot returns a copy of the session state for read-only observation.
// The Questions slice is shared and must not be mutated.
func (c *Controller) Snapshot() State {
	return c.state
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// Final returns the frozen result of a finished session.
func (c *Controller) Final() (Result, bool) {
	if c.final == nil {
		return Result{}, false
	}
	return *c.final, true
}

func (c *Controller) finish() {
	result := Result{
		Score:    c.state.Score,
		Accuracy: scoring.Accuracy(c.state.CorrectCount, len(c.state.Questions)),
	}
	c.final = &result
	c.state.Phase = PhaseFinished

	if c.cb.OnComplete != nil {
		c.cb.OnComplete(result.Score, result.Accuracy)
	}
}

func (c *Controller) reset() {
	c.final = nil
	c.state = State{Phase: PhaseIdle}
}

func (c *Controller) resetStreak() {
	if c.state.Streak != 0 {
		c.state.Streak = 0
		c.notifyStreak()
	}
}

func (c *Controller) notifyIndex() {
	if c.cb.OnIndexChanged != nil {
		c.cb.OnIndexChanged(c.state.CurrentIndex)
	}
}

func (c *Controller) notifyScore() {
	if c.cb.OnScoreChanged != nil {
		c.cb.OnScoreChanged(c.state.Score)
	}
}

func (c *Controller) notifyStreak() {
	if c.cb.OnStreakChanged != nil {
		c.cb.OnStreakChanged(c.state.Streak)
	}
}
