package session

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/config"
	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/summary"
	sess "quizdeck/internal/session"
	"quizdeck/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion(id int, correctID string) quiz.Question {
	return quiz.Question{
		ID:         id,
		Category:   "Astronomy",
		Difficulty: quiz.DifficultyEasy,
		Prompt:     fmt.Sprintf("Question %d?", id),
		Options: []quiz.Option{
			{ID: "A", Text: "first"},
			{ID: "B", Text: "second"},
			{ID: "C", Text: "third"},
			{ID: "D", Text: "fourth"},
			{ID: "E", Text: "fifth"},
		},
		CorrectOptionID: correctID,
		Explanation:     "because",
	}
}

func testDeck(correctIDs ...string) []quiz.Question {
	qs := make([]quiz.Question, len(correctIDs))
	for i, id := range correctIDs {
		qs[i] = testQuestion(i+1, id)
	}
	return qs
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func startedScreen(t *testing.T, correctIDs ...string) *SessionScreen {
	t.Helper()
	s := New(testDeck(correctIDs...), openTestStore(t), config.Default())
	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected tick command from Init")
	}
	if s.errMsg != "" {
		t.Fatalf("unexpected init error: %s", s.errMsg)
	}
	return s
}

func TestInit_EmptyDeckShowsError(t *testing.T) {
	s := New(nil, openTestStore(t), config.Default())
	s.Init()
	if s.errMsg == "" {
		t.Error("expected error message for empty deck")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

func TestAnswerShortcutShowsFeedback(t *testing.T) {
	s := startedScreen(t, "B", "A")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	ss := scr.(*SessionScreen)

	if !ss.showFeedback {
		t.Error("expected feedback after answering")
	}
	snap := ss.ctrl.Snapshot()
	if !snap.LastAnswerCorrect() {
		t.Error("expected b shortcut to select option B")
	}
	if snap.Score != 20 {
		t.Errorf("Score = %d, want 20", snap.Score)
	}
}

func TestEnterCommitsHoveredOption(t *testing.T) {
	s := startedScreen(t, "A")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.showFeedback {
		t.Error("expected feedback after enter")
	}
	snap := ss.ctrl.Snapshot()
	if !snap.LastAnswerCorrect() {
		t.Error("cursor starts on A; enter should commit it")
	}
}

func TestSecondAnswerIgnored(t *testing.T) {
	s := startedScreen(t, "A", "A")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('c'))
	ss := scr.(*SessionScreen)
	scoreAfterWrong := ss.ctrl.Snapshot().Score

	// Feedback is showing; a letter key now advances instead of re-answering.
	scr, _ = ss.Update(keyPress('a'))
	ss = scr.(*SessionScreen)

	if got := ss.ctrl.Snapshot().Score; got != scoreAfterWrong {
		t.Errorf("Score changed from %d to %d after locked answer", scoreAfterWrong, got)
	}
	if ss.ctrl.Snapshot().CurrentIndex != 1 {
		t.Errorf("expected advance to question 2, index = %d", ss.ctrl.Snapshot().CurrentIndex)
	}
}

func TestTimeoutLocksAndSchedulesAdvance(t *testing.T) {
	s := startedScreen(t, "A")

	var scr screen.Screen = s
	var cmd tea.Cmd
	for i := 0; i < sess.QuestionSeconds; i++ {
		scr, cmd = scr.Update(timerTickMsg{})
	}
	ss := scr.(*SessionScreen)

	snap := ss.ctrl.Snapshot()
	if !snap.TimedOut {
		t.Fatal("expected timeout after full countdown")
	}
	if !ss.showFeedback {
		t.Error("expected timeout toast")
	}
	if cmd == nil {
		t.Error("expected auto-advance command after timeout")
	}
}

func TestStaleAutoAdvanceIgnored(t *testing.T) {
	s := startedScreen(t, "A", "A")

	// Answer and advance to question 2 by keypress.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	// A stale auto-advance for question 1 must not skip question 2.
	scr, _ = ss.Update(autoAdvanceMsg{index: 0})
	ss = scr.(*SessionScreen)

	if got := ss.ctrl.Snapshot().CurrentIndex; got != 1 {
		t.Errorf("CurrentIndex = %d, want 1", got)
	}
}

func TestTickChainStopsWhileAnswered(t *testing.T) {
	s := startedScreen(t, "A")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	before := scr.(*SessionScreen).ctrl.Snapshot().TimeRemaining

	scr, cmd := scr.Update(timerTickMsg{})
	ss := scr.(*SessionScreen)

	if cmd != nil {
		t.Error("expected tick chain to stop while feedback is up")
	}
	if got := ss.ctrl.Snapshot().TimeRemaining; got != before {
		t.Errorf("TimeRemaining = %d, want %d (frozen)", got, before)
	}
}

func TestStaleTickFromEarlierQuestionDropped(t *testing.T) {
	s := startedScreen(t, "A", "A")

	// Answer and advance to question 2; its own tick chain is armed.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)
	fresh := ss.ctrl.Snapshot().TimeRemaining

	// A leftover tick from question 1 must neither decrement nor re-arm,
	// otherwise two chains run and the countdown drains at double speed.
	scr, cmd := ss.Update(timerTickMsg{index: 0})
	ss = scr.(*SessionScreen)
	if cmd != nil {
		t.Error("stale tick re-armed the chain")
	}
	if got := ss.ctrl.Snapshot().TimeRemaining; got != fresh {
		t.Errorf("TimeRemaining = %d, want %d after stale tick", got, fresh)
	}

	// The current question's tick still counts down and continues.
	scr, cmd = ss.Update(timerTickMsg{index: 1})
	ss = scr.(*SessionScreen)
	if cmd == nil {
		t.Error("expected the live chain to continue")
	}
	if got := ss.ctrl.Snapshot().TimeRemaining; got != fresh-1 {
		t.Errorf("TimeRemaining = %d, want %d", got, fresh-1)
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s := startedScreen(t, "A")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.showQuitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.showQuitConfirm {
		t.Error("expected n to dismiss the confirmation")
	}

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a navigation command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after quit")
	}
	if s.ctrl.Phase() != sess.PhaseIdle {
		t.Errorf("Phase = %v, want idle after quit", s.ctrl.Phase())
	}
}

func TestLastQuestionHandsOffToSummary(t *testing.T) {
	s := startedScreen(t, "A", "B")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('b'))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected a navigation command after the last question")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
}

func TestView_NonEmptyInEveryState(t *testing.T) {
	s := startedScreen(t, "A")

	if s.View(80, 24) == "" {
		t.Error("question view empty")
	}

	s.showQuitConfirm = true
	if s.View(80, 24) == "" {
		t.Error("quit confirm view empty")
	}
	s.showQuitConfirm = false

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	if scr.View(80, 24) == "" {
		t.Error("feedback view empty")
	}
}
