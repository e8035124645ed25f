package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	v := s.session.CurrentView()
	if !v.Loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No questions loaded. Press Ctrl+N to load a set."))
	}

	cardWidth := components.CardWidth(width)

	var b strings.Builder
	b.WriteString(components.CenteredCard(s.renderQuestion(v, cardWidth-6), width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderNav(v)))
	b.WriteString("\n")
	b.WriteString(components.CenteredCard(renderScore(v, cardWidth-6), width))

	return b.String()
}

// renderQuestion renders the position, prompt, options and feedback.
func (s *QuizScreen) renderQuestion(v qz.View, innerWidth int) string {
	var b strings.Builder

	b.WriteString(theme.Hint.Render(v.PositionLabel))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Width(innerWidth).Render(v.Question.Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.choices.View())

	if !v.Answered {
		return b.String()
	}

	b.WriteString("\n")
	if v.Correct {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Wrong."))
		b.WriteString(theme.Body.Render(fmt.Sprintf(" The answer is %s. %s",
			components.OptionLabel(v.Question.CorrectIndex),
			correctOption(v.Question))))
	}
	if v.Question.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(innerWidth).Render(v.Question.Explanation))
	}

	return b.String()
}

func correctOption(q qz.Question) string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

func renderNav(v qz.View) string {
	prev := components.NewButton("Prev", "←", !v.IsFirst())
	next := components.NewButton("Next", "→", !v.IsLast())
	return lipgloss.JoinHorizontal(lipgloss.Center, prev.View(), "   ", next.View())
}

func renderScore(v qz.View, innerWidth int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%d / %d", v.Score, v.Total)))
	b.WriteString(theme.Hint.Render(fmt.Sprintf("   %d%%   answered %d of %d",
		v.Percent(), v.AnsweredCount, v.Total)))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(v.Score)/float64(v.Total), false, innerWidth)
	b.WriteString(bar.View())

	if v.Complete {
		b.WriteString("\n\n")
		b.WriteString(theme.Correct.Render("All questions answered."))
		b.WriteString(theme.Hint.Render(" Press s for the summary or Ctrl+N for a new quiz."))
	}

	return b.String()
}
