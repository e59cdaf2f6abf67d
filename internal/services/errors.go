package services

import "errors"

// Sentinels for the handler layer's status mapping. Validation failures are
// gin binding errors at the request boundary; evaluator failures carry their
// own sentinels in the evaluator package.
var (
	ErrExamNotFound     = errors.New("exam not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionCompleted = errors.New("session already completed")
)
