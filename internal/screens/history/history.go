package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/screen"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// historyLimit caps how many past sessions the screen loads.
const historyLimit = 50

type loadedMsg struct {
	Records []store.SessionRecord
	Err     error
}

// HistoryScreen lists recent sessions, newest first.
type HistoryScreen struct {
	log      store.SessionLogRepo
	records  []store.SessionRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a history screen.
func New(log store.SessionLogRepo) *HistoryScreen {
	return &HistoryScreen{log: log}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.log.Recent(context.Background(), historyLimit)
		return loadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Past sessions"))
	b.WriteString("\n\n")

	switch {
	case s.errMsg != "":
		b.WriteString(center.Foreground(theme.Error).Render(s.errMsg))
		return b.String()
	case !s.loaded:
		b.WriteString(center.Foreground(theme.TextDim).Render("Loading..."))
		return b.String()
	case len(s.records) == 0:
		b.WriteString(center.Foreground(theme.TextDim).Render("Nothing here yet. Play a session!"))
		return b.String()
	}

	for i, rec := range s.records {
		when := rec.Timestamp.Local().Format("Jan 2 15:04")

		outcome := fmt.Sprintf("%d pts  %d/%d correct", rec.Score, rec.Correct, rec.Questions)
		if rec.Action == store.ActionQuit {
			outcome = fmt.Sprintf("%d pts  quit early", rec.Score)
		}

		mins := rec.DurationSecs / 60
		secs := rec.DurationSecs % 60
		line := fmt.Sprintf("  %-14s %-28s %d:%02d", when, outcome, mins, secs)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line = "▸" + line[1:]
		}
		if rec.Action == store.ActionQuit {
			style = style.Foreground(theme.TextDim)
			if i == s.selected {
				style = style.Foreground(theme.Primary)
			}
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
