package setup

import "github.com/abhisek/quizzer/internal/quiz"

// questionsLoadedMsg is sent when raw input parsed into a question set.
type questionsLoadedMsg struct {
	Questions []quiz.Question
	Source    string
}

// loadFailedMsg is sent when the loader rejected the input.
type loadFailedMsg struct {
	Source string
	Err    error
}
