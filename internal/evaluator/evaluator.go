package evaluator

import "context"

// Verdict is the judgment contract expected from the LLM endpoint: a boolean
// verdict, optionally a score in [0,1] and free-text feedback.
type Verdict struct {
	IsCorrect bool     `json:"is_correct"`
	Score     *float64 `json:"score,omitempty"`
	Feedback  string   `json:"feedback,omitempty"`
}

// Evaluation is one answer pair plus context for the judge.
type Evaluation struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
	Context       string // explanation or surrounding material, may be empty
}

// Evaluator judges a free-text answer against its key. Implementations call
// an LLM; tests use canned verdicts.
type Evaluator interface {
	Evaluate(ctx context.Context, ev Evaluation) (*Verdict, error)
}
