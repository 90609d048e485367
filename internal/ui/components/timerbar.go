package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdeck/internal/ui/theme"
)

// lowTimerThreshold is the remaining-seconds mark where the bar turns red.
const lowTimerThreshold = 5

// TimerBar displays a per-question countdown as a draining bar.
type TimerBar struct {
	Remaining int
	Total     int
	Width     int
}

// NewTimerBar creates a countdown bar.
func NewTimerBar(remaining, total, width int) TimerBar {
	return TimerBar{
		Remaining: remaining,
		Total:     total,
		Width:     width,
	}
}

// View renders the countdown bar with the seconds label on the right.
func (t TimerBar) View() string {
	label := fmt.Sprintf(" %2ds", t.Remaining)
	labelWidth := lipgloss.Width(label)

	barWidth := t.Width - labelWidth
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if t.Total > 0 {
		frac = float64(t.Remaining) / float64(t.Total)
	}

	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillStyle := theme.TimerFilled
	if t.Remaining <= lowTimerThreshold {
		fillStyle = theme.TimerLow
	}

	bar := fillStyle.Render(strings.Repeat(" ", filled)) +
		theme.TimerEmpty.Render(strings.Repeat(" ", empty))

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if t.Remaining <= lowTimerThreshold {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	return bar + labelStyle.Render(label)
}
