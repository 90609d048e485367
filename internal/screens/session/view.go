package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdeck/internal/scoring"
	sess "quizdeck/internal/session"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}

	snap := s.ctrl.Snapshot()
	if s.showFeedback {
		return s.renderFeedback(width, snap)
	}
	return s.renderQuestionView(width, snap)
}

// renderQuestionView renders the active question with countdown.
func (s *SessionScreen) renderQuestionView(width int, snap sess.State) string {
	q := snap.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Status line: position left, score and streak right.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", snap.CurrentIndex+1, len(snap.Questions)))

	streakStr := ""
	if snap.Streak > 1 {
		streakStr = fmt.Sprintf("   🔥 %d", snap.Streak)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %d%s", snap.Score, streakStr))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right)
	b.WriteString("\n")

	// Countdown bar.
	bar := components.NewTimerBar(snap.TimeRemaining, sess.QuestionSeconds, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Category tag and prompt.
	if q.Category != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(strings.ToUpper(q.Category)))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nAnswer with A-E, or arrows + Enter"))

	return b.String()
}

// renderFeedback renders the post-answer overlay.
func (s *SessionScreen) renderFeedback(width int, snap sess.State) string {
	q := snap.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch {
	case snap.TimedOut:
		b.WriteString(center.Foreground(theme.Warning).Bold(true).Render("⏰ Time's up!"))
	case snap.LastAnswerCorrect():
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
		if s.xpPulse {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("+%d XP", scoring.PointsPerCorrect)))
		}
		if snap.Streak > 1 {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.Accent).
				Render(fmt.Sprintf("🔥 %d in a row", snap.Streak)))
		}
	default:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
	}

	if !snap.LastAnswerCorrect() {
		if correct := q.CorrectOption(); correct != nil {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s) %s", correct.ID, correct.Text)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if snap.TimedOut {
		b.WriteString(center.Foreground(theme.TextDim).Render("Moving on..."))
	} else if snap.OnLastQuestion() {
		b.WriteString(center.Foreground(theme.TextDim).Render("Press any key for your results..."))
	} else {
		b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("End this session?"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Points earned so far stay with you, but the run won't count."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("[Y] End session    [N] Keep going"))
	return b.String()
}

func renderError(width int, msg string) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Couldn't start the session"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(msg))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to go back..."))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
