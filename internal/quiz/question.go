// Package quiz holds the question model and the attempt state machine.
package quiz

// TypeMultipleChoice is the only question type the player knows how to show.
const TypeMultipleChoice = "multiple-choice"

// Question is a single quiz item. Questions are immutable once loaded.
type Question struct {
	// ID identifies the question within its set. Unique per set.
	ID string

	// Type is carried through from the input but not branched on.
	Type string

	// Prompt is the question text shown to the user.
	Prompt string

	// Options are the answer choices in display order. Never empty for
	// questions produced by the loader.
	Options []string

	// CorrectIndex is the index into Options of the right answer.
	CorrectIndex int

	// Explanation is shown after the question is answered. May be empty.
	Explanation string
}

// IsCorrect reports whether option is the right answer. Any index outside
// Options is simply wrong.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectIndex
}
