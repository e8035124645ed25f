package setup

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

const formatHint = `[{"id": 1, "question": "...", "options": ["True", "False"], "answer": 0, "explanation": "..."}]`

func (s *SetupScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Load a question set"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(formatHint))
	b.WriteString("\n\n")

	pasteLabel := labelStyle(s.focus == fieldPaste).Render("Paste JSON")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		pasteLabel+"\n"+s.paste.View()))
	b.WriteString("\n\n")

	pathLabel := labelStyle(s.focus == fieldPath).Render("…or load a file: ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		pathLabel+s.path.View()))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Loading..."))
	case s.notice != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
	}

	return b.String()
}

func labelStyle(focused bool) lipgloss.Style {
	if focused {
		return theme.Selected
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim)
}

// renderError renders the blocking loader error.
func renderError(width, height int, errMsg string) string {
	box := theme.ErrorBox.
		Width(components.CardWidth(width)).
		Render("Could not load questions\n\n" + errMsg + "\n\nPress any key to try again.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
