package quiz

import "errors"

// ErrInvalidQuestionSet is returned when a question set cannot be used to
// start an attempt. Loader failures match it via errors.Is.
var ErrInvalidQuestionSet = errors.New("invalid question set")

// ErrInvalidReference is returned by SelectAnswer in strict mode when the
// question id is not part of the loaded set.
var ErrInvalidReference = errors.New("unknown question reference")
