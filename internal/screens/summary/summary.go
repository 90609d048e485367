package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/session"
	"quizdeck/internal/store"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// SummaryScreen displays the finished-session results and handles the
// leaderboard submission.
type SummaryScreen struct {
	summary *session.Summary
	newHigh bool
	lb      store.LeaderboardRepo
	replay  func() screen.Screen

	input     components.TextInput
	submitted bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. player pre-fills the leaderboard name;
// replay builds a fresh session screen for "play again".
func New(sum *session.Summary, newHigh bool, lb store.LeaderboardRepo, player string, replay func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		summary: sum,
		newHigh: newHigh,
		lb:      lb,
		replay:  replay,
		input:   components.NewTextInput("Your name", 20),
	}
	s.input.Model.SetValue(player)
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if !s.submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save score"},
			{Key: "Tab", Description: "Skip"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "P", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if !s.submitted {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if !s.submitted {
		switch kmsg.String() {
		case "enter":
			err := s.lb.Submit(context.Background(),
				strings.TrimSpace(s.input.Value()), s.summary.Score, s.summary.Accuracy)
			s.input.Submit(err == nil)
			s.submitted = true
			return s, nil
		case "tab":
			s.submitted = true
			return s, nil
		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}

	switch kmsg.String() {
	case "p", "P", "enter":
		if s.replay != nil {
			next := s.replay()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	if s.newHigh {
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render("🏆 New high score!"))
		b.WriteString("\n\n")
	}

	// Score and rank.
	b.WriteString(center.Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d points", sum.Score)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Secondary).
		Render(fmt.Sprintf("%s %s", sum.Rank.Icon(), sum.Rank.DisplayName())))
	b.WriteString("\n\n")

	// Stats line.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%        Time: %d:%02d",
		sum.TotalQuestions, sum.CorrectCount, sum.Accuracy, mins, secs)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if !s.submitted {
		b.WriteString(center.Foreground(theme.TextDim).Render("Save your score to the leaderboard"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Name: "+s.input.View()))
	} else {
		b.WriteString(center.Foreground(theme.TextDim).Render("[P] Play again    [Esc] Home"))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
