package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Direction is a navigation step.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Option configures a Session.
type Option func(*Session)

// WithStrictReferences makes SelectAnswer fail with ErrInvalidReference for
// question ids outside the loaded set instead of ignoring them.
func WithStrictReferences() Option {
	return func(s *Session) {
		s.strict = true
	}
}

// Session is one user's attempt at a question set.
//
// A Session starts empty. Initialize loads questions and may be called again
// to start over. Each question can be answered once: the first answer locks
// it. The score is derived from the answers and recomputed after every
// change. A Session is not safe for concurrent use.
type Session struct {
	questions []Question
	index     map[string]int // question id -> position
	current   int
	answers   map[string]int // question id -> chosen option
	score     int
	attemptID string
	strict    bool
}

// NewSession returns an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		index:   make(map[string]int),
		answers: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize discards all prior state and starts a new attempt over
// questions. An empty set leaves the session empty. A set with repeated ids
// is rejected with ErrInvalidQuestionSet and the session is left unchanged.
func (s *Session) Initialize(questions []Question) error {
	index := make(map[string]int, len(questions))
	for i, q := range questions {
		if prev, dup := index[q.ID]; dup {
			return fmt.Errorf("%w: questions %d and %d share id %q",
				ErrInvalidQuestionSet, prev+1, i+1, q.ID)
		}
		index[q.ID] = i
	}

	s.questions = append([]Question(nil), questions...)
	s.index = index
	s.current = 0
	s.answers = make(map[string]int)
	s.score = 0
	s.attemptID = uuid.New().String()
	return nil
}

// Loaded reports whether the session has questions.
func (s *Session) Loaded() bool {
	return len(s.questions) > 0
}

// SelectAnswer records option as the answer to question id. Answering an
// already answered question is a no-op. The option is not range checked;
// an out-of-range option is stored and scored wrong.
func (s *Session) SelectAnswer(id string, option int) error {
	if _, ok := s.index[id]; !ok {
		if s.strict {
			return fmt.Errorf("%w: %q", ErrInvalidReference, id)
		}
		return nil
	}
	if _, locked := s.answers[id]; locked {
		return nil
	}
	s.answers[id] = option
	s.recompute()
	return nil
}

// SelectCurrent answers the question at the current position.
func (s *Session) SelectCurrent(option int) error {
	if !s.Loaded() {
		return nil
	}
	return s.SelectAnswer(s.questions[s.current].ID, option)
}

// Navigate moves one question back or forward, saturating at both ends.
func (s *Session) Navigate(d Direction) {
	if !s.Loaded() {
		return
	}
	switch d {
	case Previous:
		if s.current > 0 {
			s.current--
		}
	case Next:
		if s.current < len(s.questions)-1 {
			s.current++
		}
	}
}

// recompute derives the score from the answer map.
func (s *Session) recompute() {
	score := 0
	for _, q := range s.questions {
		if chosen, ok := s.answers[q.ID]; ok && q.IsCorrect(chosen) {
			score++
		}
	}
	s.score = score
}

// Score returns the number of correctly answered questions.
func (s *Session) Score() int {
	return s.score
}

// Total returns the number of loaded questions.
func (s *Session) Total() int {
	return len(s.questions)
}

// Current returns the position of the question on screen.
func (s *Session) Current() int {
	return s.current
}

// AttemptID identifies the current attempt. Empty before the first
// Initialize.
func (s *Session) AttemptID() string {
	return s.attemptID
}

// Answer returns the locked answer for id, if any.
func (s *Session) Answer(id string) (int, bool) {
	chosen, ok := s.answers[id]
	return chosen, ok
}

// Answered returns how many questions are locked.
func (s *Session) Answered() int {
	return len(s.answers)
}

// Complete reports whether every question has been answered. An empty
// session is never complete.
func (s *Session) Complete() bool {
	return s.Loaded() && len(s.answers) == len(s.questions)
}

// Questions returns a copy of the loaded questions in presentation order.
func (s *Session) Questions() []Question {
	return append([]Question(nil), s.questions...)
}
