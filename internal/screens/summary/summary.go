package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// SummaryScreen lists every question of the attempt with its outcome.
type SummaryScreen struct {
	session *quiz.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(session *quiz.Session) *SummaryScreen {
	return &SummaryScreen{session: session}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.session == nil || !s.session.Loaded() {
		return ""
	}
	results := s.session.Results()
	v := s.session.CurrentView()

	var b strings.Builder

	heading := "Quiz in progress"
	if v.Complete {
		heading = "Quiz complete!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d / %d        Answered: %d        %d%%",
		v.Score, v.Total, v.AnsweredCount, v.Percent())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	lines := make([]string, 0, len(results))
	for i, r := range results {
		lines = append(lines, resultLine(i, r))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(lines, "\n")))

	return b.String()
}

// resultLine renders one question's outcome.
func resultLine(i int, r quiz.Result) string {
	prompt := r.Question.Prompt
	if len([]rune(prompt)) > 40 {
		prompt = string([]rune(prompt)[:39]) + "…"
	}
	line := fmt.Sprintf("%2d. %-40s", i+1, prompt)

	switch {
	case !r.Answered:
		return theme.Faded.Render("  · " + line + "  not answered")
	case r.Correct:
		return theme.Correct.Render("  ✓ " + line + "  " + components.OptionLabel(r.Chosen))
	default:
		return theme.Incorrect.Render(fmt.Sprintf("  ✗ %s  %s (answer %s)",
			line, components.OptionLabel(r.Chosen), components.OptionLabel(r.Question.CorrectIndex)))
	}
}
