package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/config"
	"quizdeck/internal/quiz"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/home"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	st     *store.Store

	width  int
	height int

	totalXP    int
	streakDays int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(cfg config.Config, pool []quiz.Question, st *store.Store) AppModel {
	homeScreen := home.New(cfg, pool, st)
	m := AppModel{
		router: router.New(homeScreen),
		st:     st,
	}
	m.refreshHeader()
	return m
}

// refreshHeader reloads the XP and day-streak shown in the header.
func (m *AppModel) refreshHeader() {
	p, err := m.st.ProgressRepo().Load(context.Background())
	if err != nil {
		return
	}
	m.totalXP = p.TotalXP
	m.streakDays = p.CurrentStreakDays
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Progress may have changed while a session screen was up.
		cmd := m.router.Update(msg)
		m.refreshHeader()
		return m, tea.Batch(cmd, func() tea.Msg { return home.RefreshStatsMsg{} })

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with their own Esc handling (quit confirmation)
			// get the key; everything else pops.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				cmd := m.router.Update(router.PopScreenMsg{})
				m.refreshHeader()
				return m, tea.Batch(cmd, func() tea.Msg { return home.RefreshStatsMsg{} })
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.totalXP, m.streakDays, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(cfg config.Config, pool []quiz.Question, st *store.Store) error {
	p := tea.NewProgram(newAppModel(cfg, pool, st))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
