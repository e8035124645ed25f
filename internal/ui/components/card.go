package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

// CardWidth returns the uniform card width for a content area, so the
// question card and the score card line up.
func CardWidth(areaWidth int) int {
	w := areaWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card of the given outer width.
func Card(content string, width int) string {
	return theme.Card.
		Width(width).
		Render(content)
}

// CenteredCard renders a card and centers it horizontally in areaWidth.
func CenteredCard(content string, areaWidth int) string {
	return lipgloss.PlaceHorizontal(areaWidth, lipgloss.Center,
		Card(content, CardWidth(areaWidth)))
}
