package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

// MultiChoice is the option list for one question.
//
// The cursor moves with up/down (or k/j); enter picks the option under the
// cursor and 1-9 pick directly. Once Locked the list only renders the
// outcome.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Cursor       int

	// Locked is true when the question already has an answer.
	Locked      bool
	ChosenIndex int

	// Submitted is set by Update when the user picked an option this turn.
	Submitted bool
}

// NewMultiChoice creates an option list with the cursor on the first option.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Lock marks the list as answered with chosen.
func (m MultiChoice) Lock(chosen int) MultiChoice {
	m.Locked = true
	m.ChosenIndex = chosen
	m.Submitted = false
	return m
}

// Update handles cursor movement and selection keys.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	m.Submitted = false
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Cursor
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.Options) {
				m.Cursor = idx
				m.Submitted = true
				m.ChosenIndex = idx
			}
		}
	}

	return m, nil
}

// OptionLabel returns the display label for option i: A, B, ... Z, then
// the 1-based number.
func OptionLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}

// View renders the option list.
func (m MultiChoice) View() string {
	var b strings.Builder

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s. %s", prefix, OptionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case m.Locked && i == m.CorrectIndex:
			style = theme.Correct
		case m.Locked && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Locked:
			style = theme.Faded
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect returns true if the locked answer is the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Locked && m.ChosenIndex == m.CorrectIndex
}
