package loader

import (
	"fmt"

	"github.com/abhisek/quizzer/internal/quiz"
)

// ValidationError describes why raw input could not be turned into a
// question set. It matches quiz.ErrInvalidQuestionSet with errors.Is.
type ValidationError struct {
	Item    int    // 1-based position of the offending question, 0 for the whole set
	Message string // Human-readable description of the failure
	Err     error  // Underlying decode or schema error, if any
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Item > 0 {
		msg = fmt.Sprintf("question %d: %s", e.Item, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return quiz.ErrInvalidQuestionSet.Error() + ": " + msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool {
	return target == quiz.ErrInvalidQuestionSet
}
