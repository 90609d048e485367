package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/config"
	"quizdeck/internal/progress"
	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/scoring"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/summary"
	sess "quizdeck/internal/session"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
)

// timeoutToastDelay is how long the "Time's up" toast stays on screen
// before the session auto-advances.
const timeoutToastDelay = time.Second

// SessionScreen implements screen.Screen for an active quiz run.
type SessionScreen struct {
	ctrl      *sess.Controller
	questions []quiz.Question
	st        *store.Store
	cfg       config.Config

	options         components.OptionList
	showFeedback    bool
	showQuitConfirm bool
	xpPulse         bool
	errMsg          string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscHandler = (*SessionScreen)(nil)

// New creates a session screen over a fixed question list.
func New(questions []quiz.Question, st *store.Store, cfg config.Config) *SessionScreen {
	s := &SessionScreen{
		questions: questions,
		st:        st,
		cfg:       cfg,
	}
	s.ctrl = sess.NewController(sess.Callbacks{
		OnScoreChanged: func(int) { s.xpPulse = true },
	})
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if err := s.ctrl.Start(s.questions); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	snap := s.ctrl.Snapshot()
	s.options = components.NewOptionList(snap.CurrentQuestion())

	_ = s.st.SessionLogRepo().Append(context.Background(), store.SessionLogData{
		SessionID: snap.SessionID,
		Action:    store.ActionStart,
		Questions: len(s.questions),
	})

	return tickCmd(snap.CurrentIndex)
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

// HandlesEsc keeps the app from popping the screen directly; Esc opens
// the quit confirmation instead.
func (s *SessionScreen) HandlesEsc() bool {
	return s.errMsg == ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-E / 1-5", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Lock in"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case autoAdvanceMsg:
		snap := s.ctrl.Snapshot()
		if s.showFeedback && snap.TimedOut && msg.index == snap.CurrentIndex {
			return s.advance()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if s.ctrl.Phase() != sess.PhasePlaying {
		return s, nil // session over, let the tick chain die
	}

	snap := s.ctrl.Snapshot()
	if msg.index != snap.CurrentIndex {
		return s, nil // stale chain from a question already advanced past
	}
	if snap.Answered {
		return s, nil
	}

	s.ctrl.Tick()

	snap = s.ctrl.Snapshot()
	if snap.TimedOut {
		// Countdown hit zero: lock the question with no selection and
		// show the toast, then auto-advance.
		s.options.Lock("", true)
		s.showFeedback = true
		s.showQuitConfirm = false
		return s, autoAdvanceCmd(snap.CurrentIndex)
	}

	return s, tickCmd(snap.CurrentIndex)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Quit confirmation dialog.
	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s.quit()
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay — any key advances.
	if s.showFeedback {
		return s.advance()
	}

	if s.ctrl.Phase() != sess.PhasePlaying {
		return s, nil
	}

	switch key {
	case "esc":
		s.showQuitConfirm = true
		return s, nil
	case "enter":
		return s.commitAnswer(s.options.Hovered())
	}

	// Letter and number shortcuts commit immediately.
	if i := s.options.ShortcutIndex(key); i >= 0 {
		s.options.Cursor = i
		return s.commitAnswer(s.options.Hovered())
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// commitAnswer locks in the given option and shows feedback.
func (s *SessionScreen) commitAnswer(optionID string) (screen.Screen, tea.Cmd) {
	if optionID == "" {
		return s, nil
	}

	s.xpPulse = false
	s.ctrl.SelectOption(optionID)

	snap := s.ctrl.Snapshot()
	if !snap.Answered {
		return s, nil // unknown id, engine refused it
	}

	s.options.Lock(optionID, false)
	s.showFeedback = true
	return s, nil
}

// advance moves past the answered question, or hands off to the summary
// when the deck is done.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	s.showFeedback = false
	s.xpPulse = false
	s.ctrl.Advance()

	if s.ctrl.Phase() == sess.PhaseFinished {
		return s.finish()
	}

	snap := s.ctrl.Snapshot()
	s.options = components.NewOptionList(snap.CurrentQuestion())
	return s, tickCmd(snap.CurrentIndex)
}

// finish persists the result and replaces this screen with the summary.
func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	snap := s.ctrl.Snapshot()
	result, ok := s.ctrl.Final()
	if !ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()
	progRepo := s.st.ProgressRepo()

	prev, _ := progRepo.Load(ctx)
	newHigh := scoring.IsNewHighScore(result.Score, prev.HighScore)
	_ = progRepo.Save(ctx, progress.ApplySessionResult(prev, result.Score, time.Now()))

	sum := sess.BuildSummary(snap, result)

	_ = s.st.SessionLogRepo().Append(ctx, store.SessionLogData{
		SessionID:    snap.SessionID,
		Action:       store.ActionEnd,
		Score:        result.Score,
		Questions:    sum.TotalQuestions,
		Correct:      sum.CorrectCount,
		DurationSecs: int(sum.Duration.Seconds()),
	})

	questions, st, cfg := s.questions, s.st, s.cfg
	replay := func() screen.Screen {
		return New(questions, st, cfg)
	}

	next := summary.New(sum, newHigh, st.LeaderboardRepo(), s.cfg.Player, replay)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// quit abandons the session, banking partial XP.
func (s *SessionScreen) quit() (screen.Screen, tea.Cmd) {
	snap := s.ctrl.Snapshot()
	partial := s.ctrl.Quit()

	ctx := context.Background()
	progRepo := s.st.ProgressRepo()
	prev, _ := progRepo.Load(ctx)
	_ = progRepo.Save(ctx, progress.ApplyPartialCredit(prev, partial))

	_ = s.st.SessionLogRepo().Append(ctx, store.SessionLogData{
		SessionID:    snap.SessionID,
		Action:       store.ActionQuit,
		Score:        partial,
		Questions:    snap.CurrentIndex,
		DurationSecs: int(time.Since(snap.StartedAt).Seconds()),
	})

	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

// tickCmd returns a 1-second tick command pinned to a question index.
func tickCmd(index int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{index: index}
	})
}

// autoAdvanceCmd schedules the post-timeout advance.
func autoAdvanceCmd(index int) tea.Cmd {
	return tea.Tick(timeoutToastDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{index: index}
	})
}
