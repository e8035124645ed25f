package setup

import (
	"log"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/loader"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

// field selects which input receives keystrokes.
type field int

const (
	fieldPaste field = iota
	fieldPath
)

const pasteSource = "pasted input"

// SetupScreen collects a question set, either pasted as JSON or read from
// a file, and starts a new attempt with it.
type SetupScreen struct {
	session *quiz.Session
	newQuiz func() screen.Screen

	paste textarea.Model
	path  components.TextInput
	focus field

	loading bool
	errMsg  string
	notice  string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen. newQuiz builds the screen shown once a
// non-empty set is loaded; path pre-fills the file input.
func New(session *quiz.Session, path string, newQuiz func() screen.Screen) *SetupScreen {
	ta := textarea.New()
	ta.Placeholder = "Paste questions JSON here"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(60)
	ta.SetHeight(10)

	pi := components.NewTextInput("path/to/questions.json", 0)
	pi.SetValue(path)

	s := &SetupScreen{
		session: session,
		newQuiz: newQuiz,
		paste:   ta,
		path:    pi,
	}
	if path != "" {
		s.focus = fieldPath
	}
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.focusField(s.focus)
}

func (s *SetupScreen) Title() string {
	return "Load Questions"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Dismiss"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Load"},
		{Key: "Tab", Description: "Paste / File"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return s.handleLoaded(msg)

	case loadFailedMsg:
		s.loading = false
		s.errMsg = msg.Err.Error()
		log.Printf("load from %s failed: %v", msg.Source, msg.Err)
		return s, nil

	case tea.WindowSizeMsg:
		s.paste.SetWidth(min(max(msg.Width-10, 20), 100))
		s.paste.SetHeight(max(msg.Height-16, 3))
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forward(msg)
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Blocking error: the next key only dismisses it.
	if s.errMsg != "" {
		s.errMsg = ""
		return s, nil
	}
	if s.loading {
		return s, nil
	}

	switch msg.String() {
	case "tab", "shift+tab":
		if s.focus == fieldPaste {
			return s, s.focusField(fieldPath)
		}
		return s, s.focusField(fieldPaste)
	case "ctrl+s":
		return s, s.load()
	case "enter":
		if s.focus == fieldPath {
			return s, s.load()
		}
	}

	return s.forward(msg)
}

// forward passes msg to the focused input.
func (s *SetupScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.focus == fieldPath {
		s.path, cmd = s.path.Update(msg)
	} else {
		s.paste, cmd = s.paste.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) focusField(f field) tea.Cmd {
	s.focus = f
	if f == fieldPath {
		s.paste.Blur()
		return s.path.Focus()
	}
	s.path.Blur()
	return s.paste.Focus()
}

// load parses the focused input off the update loop.
func (s *SetupScreen) load() tea.Cmd {
	s.notice = ""

	if s.focus == fieldPath {
		path := strings.TrimSpace(s.path.Value())
		if path == "" {
			s.notice = "Enter the path of a JSON or YAML question file."
			return nil
		}
		s.loading = true
		return func() tea.Msg {
			qs, err := loader.LoadFile(path)
			if err != nil {
				return loadFailedMsg{Source: path, Err: err}
			}
			return questionsLoadedMsg{Questions: qs, Source: path}
		}
	}

	raw := s.paste.Value()
	if strings.TrimSpace(raw) == "" {
		s.notice = "Paste a JSON array of questions first."
		return nil
	}
	s.loading = true
	return func() tea.Msg {
		qs, err := loader.Parse([]byte(raw), loader.FormatJSON)
		if err != nil {
			return loadFailedMsg{Source: pasteSource, Err: err}
		}
		return questionsLoadedMsg{Questions: qs, Source: pasteSource}
	}
}

func (s *SetupScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false

	if err := s.session.Initialize(msg.Questions); err != nil {
		s.errMsg = err.Error()
		log.Printf("load from %s rejected: %v", msg.Source, err)
		return s, nil
	}

	if !s.session.Loaded() {
		s.notice = "That question set is empty. Add at least one question."
		log.Printf("attempt %s: empty question set from %s", s.session.AttemptID(), msg.Source)
		return s, nil
	}

	log.Printf("attempt %s: loaded %d questions from %s",
		s.session.AttemptID(), s.session.Total(), msg.Source)

	next := s.newQuiz()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
