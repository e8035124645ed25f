// Package screen defines the contract between the app shell and the
// screens it routes between.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/ui/layout"
)

// Screen is one full-window view of the app. The shell draws the header and
// footer around it.
type Screen interface {
	// Init runs each time the screen comes to the top of the stack through
	// a push or replace.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the
	// stack. Window size messages arrive here too.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that replace the default
// footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
