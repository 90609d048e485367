package session

import (
	"time"

	"quizdeck/internal/quiz"
)

// QuestionSeconds is the per-question countdown length.
const QuestionSeconds = 30

// Phase represents the outer lifecycle of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // no session active
	PhasePlaying               // one question cycle active
	PhaseFinished              // terminal, holds the final result
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is the runtime state of a session. Exclusively owned by the
// Controller; callers observe copies via Snapshot and never mutate it.
type State struct {
	Phase Phase

	// Questions is the fixed ordered list for this session.
	// Referenced read-only; owned by the caller.
	Questions []quiz.Question

	// CurrentIndex is the active question while Playing.
	CurrentIndex int

	Score        int
	Streak       int
	CorrectCount int

	// SelectedOptionID is the chosen option id, empty until the player
	// answers and empty forever for a timed-out question.
	SelectedOptionID string

	// Answered is monotonic within a question: once true it stays true
	// until the next question loads.
	Answered bool

	// TimedOut marks that the current question was closed by countdown
	// expiry rather than a selection.
	TimedOut bool

	// TimeRemaining is the countdown in whole seconds, 0..QuestionSeconds.
	TimeRemaining int

	// SessionID is the UUID for this session.
	SessionID string

	// StartedAt is when the session entered Playing.
	StartedAt time.Time
}

// CurrentQuestion returns the active question, or nil outside Playing.
func (s *State) CurrentQuestion() *quiz.Question {
	if s.Phase != PhasePlaying {
		return nil
	}
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// LastAnswerCorrect reports whether the current answered question was
// answered correctly. False while unanswered and after a timeout.
func (s *State) LastAnswerCorrect() bool {
	q := s.CurrentQuestion()
	if q == nil || !s.Answered {
		return false
	}
	return s.SelectedOptionID == q.CorrectOptionID
}

// OnLastQuestion reports whether the current question is the final one.
func (s *State) OnLastQuestion() bool {
	return s.CurrentIndex == len(s.Questions)-1
}

// Result is the immutable outcome of a finished session.
type Result struct {
	Score    int
	Accuracy float64 // percentage, 0..100
}
