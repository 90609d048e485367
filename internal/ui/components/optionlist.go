package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/quiz"
	"quizdeck/internal/ui/theme"
)

// OptionList renders a question's answer options and tracks the cursor.
// Selection is locked from outside via Lock once an answer is committed;
// after locking the list reveals correct/incorrect coloring.
type OptionList struct {
	Question *quiz.Question
	Cursor   int
	Locked   bool
	ChosenID string
	TimedOut bool
}

// NewOptionList creates an option list for the given question.
func NewOptionList(q *quiz.Question) OptionList {
	return OptionList{Question: q}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. It never commits an answer itself;
// the owning screen reads Hovered on enter and calls Lock.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked || o.Question == nil {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Question.Options)-1 {
			o.Cursor++
		}
	default:
		// Letter shortcuts jump the cursor directly: a..e or 1..5.
		if i := o.ShortcutIndex(key); i >= 0 {
			o.Cursor = i
		}
	}

	return o, nil
}

// ShortcutIndex resolves an answer shortcut to an option index: letters
// find the option with that id wherever it sits, digits are positional.
// Returns -1 when key is not a shortcut or names no option.
func (o OptionList) ShortcutIndex(key string) int {
	if o.Question == nil || len(key) != 1 {
		return -1
	}
	c := key[0]
	switch {
	case c >= 'a' && c <= 'e':
		id := string(c - 'a' + 'A')
		for i, opt := range o.Question.Options {
			if opt.ID == id {
				return i
			}
		}
	case c >= '1' && c <= '5':
		if i := int(c - '1'); i < len(o.Question.Options) {
			return i
		}
	}
	return -1
}

// Hovered returns the option ID under the cursor, or "" if none.
func (o OptionList) Hovered() string {
	if o.Question == nil || o.Cursor < 0 || o.Cursor >= len(o.Question.Options) {
		return ""
	}
	return o.Question.Options[o.Cursor].ID
}

// Lock freezes the list with the committed choice. An empty chosenID
// means the question timed out with no answer.
func (o *OptionList) Lock(chosenID string, timedOut bool) {
	o.Locked = true
	o.ChosenID = chosenID
	o.TimedOut = timedOut
}

// View renders the option rows.
func (o OptionList) View() string {
	if o.Question == nil {
		return ""
	}

	var b strings.Builder
	for i, opt := range o.Question.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.ID, opt.Text)

		switch {
		case !o.Locked && i == o.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case !o.Locked:
			b.WriteString(theme.Unselected.Render(line))
		case opt.ID == o.Question.CorrectOptionID:
			b.WriteString(theme.Correct.Render(line))
		case opt.ID == o.ChosenID:
			b.WriteString(theme.Incorrect.Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
