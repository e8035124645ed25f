package quiz

import (
	"log"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/summary"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

// QuizScreen presents one question at a time and records answers in the
// shared session.
type QuizScreen struct {
	session  *qz.Session
	newSetup func() screen.Screen

	choices components.MultiChoice
	shownID string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for session. newSetup builds the screen used to
// load a different question set.
func New(session *qz.Session, newSetup func() screen.Screen) *QuizScreen {
	s := &QuizScreen{
		session:  session,
		newSetup: newSetup,
	}
	s.sync()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if !s.session.Loaded() {
		return []layout.KeyHint{
			{Key: "Ctrl+N", Description: "Load questions"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if s.choices.Locked {
		return []layout.KeyHint{
			{Key: "←/→", Description: "Prev/Next"},
			{Key: "s", Description: "Summary"},
			{Key: "Ctrl+N", Description: "New quiz"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter/1-9", Description: "Answer"},
		{Key: "←/→", Description: "Prev/Next"},
		{Key: "s", Description: "Summary"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// The session may have been reset while another screen was on top.
		s.sync()
		return s, nil
	}

	if !s.session.Loaded() {
		switch kmsg.String() {
		case "ctrl+n", "enter":
			return s, s.replaceWithSetup()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "p":
		s.session.Navigate(qz.Previous)
		s.sync()
		return s, nil
	case "right", "l", "n":
		s.session.Navigate(qz.Next)
		s.sync()
		return s, nil
	case "s":
		sum := summary.New(s.session)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: sum}
		}
	case "ctrl+n":
		log.Printf("attempt %s: abandoned at %d/%d",
			s.session.AttemptID(), s.session.Score(), s.session.Total())
		return s, s.replaceWithSetup()
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	if s.choices.Submitted {
		s.answer(s.choices.ChosenIndex)
	}
	return s, cmd
}

func (s *QuizScreen) answer(option int) {
	id := s.shownID
	if err := s.session.SelectCurrent(option); err != nil {
		log.Printf("attempt %s: answer %d to %s rejected: %v", s.session.AttemptID(), option, id, err)
		return
	}
	v := s.session.CurrentView()
	log.Printf("attempt %s: question %s answered %d (correct=%t), score %d/%d",
		s.session.AttemptID(), id, v.ChosenIndex, v.Correct, v.Score, v.Total)
	if v.Complete {
		log.Printf("attempt %s: complete with %d/%d", s.session.AttemptID(), v.Score, v.Total)
	}
	s.sync()
}

func (s *QuizScreen) replaceWithSetup() tea.Cmd {
	next := s.newSetup()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// sync rebuilds the option list when the question on screen changed or the
// attempt was reset, and locks it once the session has an answer for it.
func (s *QuizScreen) sync() {
	v := s.session.CurrentView()
	if !v.Loaded {
		s.choices = components.MultiChoice{}
		s.shownID = ""
		return
	}

	if v.Question.ID != s.shownID || (s.choices.Locked && !v.Answered) {
		s.choices = components.NewMultiChoice(v.Question.Options, v.Question.CorrectIndex)
		s.shownID = v.Question.ID
	}
	if v.Answered && !s.choices.Locked {
		s.choices = s.choices.Lock(v.ChosenIndex)
	}
}
