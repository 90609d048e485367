package leaderboard

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

type loadedMsg struct {
	Entries []store.LeaderboardEntry
	Err     error
}

// LeaderboardScreen displays the top scores.
type LeaderboardScreen struct {
	lb      store.LeaderboardRepo
	size    int
	entries []store.LeaderboardEntry
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a leaderboard screen showing up to size entries.
func New(lb store.LeaderboardRepo, size int) *LeaderboardScreen {
	if size <= 0 {
		size = 10
	}
	return &LeaderboardScreen{lb: lb, size: size}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.lb.Top(context.Background(), s.size)
		return loadedMsg{Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("🏆 Leaderboard"))
	b.WriteString("\n\n")

	switch {
	case s.errMsg != "":
		b.WriteString(center.Foreground(theme.Error).Render(s.errMsg))
	case !s.loaded:
		b.WriteString(center.Foreground(theme.TextDim).Render("Loading..."))
	case len(s.entries) == 0:
		b.WriteString(center.Foreground(theme.TextDim).Render("No scores yet. Play a session!"))
	default:
		header := fmt.Sprintf("  %-4s %-20s %8s %10s", "#", "Player", "Score", "Accuracy")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(header)))))
		b.WriteString("\n")

		for i, e := range s.entries {
			line := fmt.Sprintf("  %-4d %-20s %8d %9.0f%%", i+1, e.Player, e.Score, e.Accuracy)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == 0 {
				style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
