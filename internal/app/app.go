package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	quizscreen "github.com/abhisek/quizzer/internal/screens/quiz"
	"github.com/abhisek/quizzer/internal/screens/setup"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	// Session holds the attempt. When it is already loaded the app opens
	// on the first question, otherwise on the loader.
	Session *quiz.Session

	// QuestionsPath pre-fills the loader's file input.
	QuestionsPath string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *quiz.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel on the quiz or setup screen.
func newAppModel(opts Options) AppModel {
	session := opts.Session
	if session == nil {
		session = quiz.NewSession()
	}

	// The two screens replace each other, so each gets a factory for the
	// other instead of importing it.
	var newSetup, newQuiz func() screen.Screen
	newSetup = func() screen.Screen {
		return setup.New(session, opts.QuestionsPath, newQuiz)
	}
	newQuiz = func() screen.Screen {
		return quizscreen.New(session, newSetup)
	}

	first := newSetup
	if session.Loaded() {
		first = newQuiz
	}

	return AppModel{
		router:  router.New(first()),
		session: session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	score := layout.ScoreLabel(m.session.Score(), m.session.Total())
	header := layout.RenderHeader(title, score, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
