package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/config"
	"quizdeck/internal/screen"
	"quizdeck/internal/store"
)

// confirmScreen stands in for a screen that guards Esc with its own
// confirmation dialog, like an in-flight quiz.
type confirmScreen struct {
	guardsEsc bool
	keysSeen  []string
}

func (c *confirmScreen) Init() tea.Cmd { return nil }

func (c *confirmScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		c.keysSeen = append(c.keysSeen, key.String())
	}
	return c, nil
}

func (c *confirmScreen) View(int, int) string { return "confirm" }
func (c *confirmScreen) Title() string        { return "Confirm" }
func (c *confirmScreen) HandlesEsc() bool     { return c.guardsEsc }

func testModel(t *testing.T) AppModel {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return newAppModel(config.Default(), nil, st)
}

func TestEscForwardedToGuardingScreen(t *testing.T) {
	m := testModel(t)
	sc := &confirmScreen{guardsEsc: true}
	m.router.Push(sc)

	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)

	if m.router.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2; guarding screen must not be popped", m.router.Depth())
	}
	if len(sc.keysSeen) != 1 || sc.keysSeen[0] != "esc" {
		t.Errorf("screen saw keys %v, want the esc key", sc.keysSeen)
	}
}

func TestEscPopsNonGuardingScreen(t *testing.T) {
	m := testModel(t)
	sc := &confirmScreen{guardsEsc: false}
	m.router.Push(sc)

	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)

	if m.router.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1 after esc pops", m.router.Depth())
	}
	if len(sc.keysSeen) != 0 {
		t.Errorf("popped screen saw keys %v, want none", sc.keysSeen)
	}
}

func TestEscNoopOnHomeScreen(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)

	if m.router.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1; home never pops", m.router.Depth())
	}
}
