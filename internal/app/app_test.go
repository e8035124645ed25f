package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	quizscreen "github.com/abhisek/quizzer/internal/screens/quiz"
	"github.com/abhisek/quizzer/internal/screens/setup"
	"github.com/abhisek/quizzer/internal/screens/summary"
)

func loadedSession(t *testing.T) *quiz.Session {
	t.Helper()
	s := quiz.NewSession()
	err := s.Initialize([]quiz.Question{
		{ID: "1", Prompt: "Sky is blue?", Options: []string{"True", "False"}},
		{ID: "2", Prompt: "Fish fly?", Options: []string{"True", "False"}, CorrectIndex: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// update feeds msg to m and then every command it produces, one level deep.
func update(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd != nil {
		if follow := cmd(); follow != nil {
			next, _ = m.Update(follow)
			m = next.(AppModel)
		}
	}
	return m
}

func TestNewAppModel_StartsOnSetupWhenEmpty(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*setup.SetupScreen); !ok {
		t.Errorf("active = %T, want *setup.SetupScreen", m.router.Active())
	}
}

func TestNewAppModel_StartsOnQuizWhenLoaded(t *testing.T) {
	m := newAppModel(Options{Session: loadedSession(t)})
	if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
		t.Errorf("active = %T, want *quiz.QuizScreen", m.router.Active())
	}
}

func TestApp_SummaryRoundTrip(t *testing.T) {
	m := newAppModel(Options{Session: loadedSession(t)})

	m = update(m, tea.KeyPressMsg{Code: 's', Text: "s"})
	if _, ok := m.router.Active().(*summary.SummaryScreen); !ok {
		t.Fatalf("active = %T, want *summary.SummaryScreen", m.router.Active())
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}

	m = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := m.router.Active().(*quizscreen.QuizScreen); !ok {
		t.Errorf("active = %T after Esc, want *quiz.QuizScreen", m.router.Active())
	}
}

func TestApp_NewQuizReturnsToSetup(t *testing.T) {
	m := newAppModel(Options{Session: loadedSession(t), QuestionsPath: "set.json"})

	m = update(m, tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if _, ok := m.router.Active().(*setup.SetupScreen); !ok {
		t.Errorf("active = %T, want *setup.SetupScreen", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestApp_HeaderShowsScore(t *testing.T) {
	session := loadedSession(t)
	m := newAppModel(Options{Session: session})
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(m, tea.KeyPressMsg{Code: '1', Text: "1"})

	if session.Score() != 1 {
		t.Fatalf("Score = %d, want 1", session.Score())
	}
	if content := m.render(); !strings.Contains(content, "Score 1 / 2") {
		t.Error("expected header to show the score")
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	m = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if content := m.render(); !strings.Contains(content, "Terminal too small!") {
		t.Error("expected minimum size message")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}
