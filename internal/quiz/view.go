package quiz

import (
	"fmt"
	"math"
)

// View is a read-only projection of a session for rendering.
type View struct {
	// Loaded is false while the session has no questions. All other fields
	// are zero in that case.
	Loaded bool

	Question Question

	// Answered is true once the question on screen is locked. ChosenIndex
	// and Correct are only meaningful when it is set.
	Answered    bool
	ChosenIndex int
	Correct     bool

	Score int
	Total int

	// Position is the zero-based index of Question.
	Position      int
	PositionLabel string

	AnsweredCount int
	Complete      bool
}

// Percent returns the score as a rounded percentage of the total.
func (v View) Percent() int {
	if v.Total == 0 {
		return 0
	}
	return int(math.Round(float64(v.Score) / float64(v.Total) * 100))
}

// IsFirst reports whether Previous would be a no-op.
func (v View) IsFirst() bool {
	return v.Position == 0
}

// IsLast reports whether Next would be a no-op.
func (v View) IsLast() bool {
	return v.Position >= v.Total-1
}

// CurrentView projects the session state for the question on screen.
func (s *Session) CurrentView() View {
	if !s.Loaded() {
		return View{}
	}

	q := s.questions[s.current]
	v := View{
		Loaded:        true,
		Question:      q,
		Score:         s.score,
		Total:         len(s.questions),
		Position:      s.current,
		PositionLabel: fmt.Sprintf("Question %d / %d", s.current+1, len(s.questions)),
		AnsweredCount: len(s.answers),
		Complete:      s.Complete(),
	}
	if chosen, ok := s.answers[q.ID]; ok {
		v.Answered = true
		v.ChosenIndex = chosen
		v.Correct = q.IsCorrect(chosen)
	}
	return v
}

// Result is the outcome of one question in an attempt.
type Result struct {
	Question Question
	Answered bool
	Chosen   int
	Correct  bool
}

// Results lists every question with its answer state, in presentation order.
func (s *Session) Results() []Result {
	results := make([]Result, 0, len(s.questions))
	for _, q := range s.questions {
		r := Result{Question: q}
		if chosen, ok := s.answers[q.ID]; ok {
			r.Answered = true
			r.Chosen = chosen
			r.Correct = q.IsCorrect(chosen)
		}
		results = append(results, r)
	}
	return results
}
