package scoring

import (
	"errors"
	"fmt"
)

// QuestionType selects the scoring rule for a question. Several wire-level
// tags are aliases for the same rule; ParseQuestionType normalizes them.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeFillInTheBlank QuestionType = "fill_in_the_blank"
	TypeMatching       QuestionType = "matching"
)

var ErrUnsupportedType = errors.New("unsupported question type")

// typeAliases maps every recognized wire tag to its scorer family. Keep this
// exhaustive when new subtypes are introduced; an unknown tag is rejected,
// never silently scored.
var typeAliases = map[string]QuestionType{
	"multiple_choice":            TypeMultipleChoice,
	"multiple_selection":         TypeMultipleChoice,
	"sentence_completion":        TypeMultipleChoice,
	"summary_completion":         TypeMultipleChoice,
	"true_false":                 TypeTrueFalse,
	"true_false_not_given":       TypeTrueFalse,
	"fill_in_the_blank":          TypeFillInTheBlank,
	"short_answer":               TypeFillInTheBlank,
	"matching":                   TypeMatching,
	"scenario_matching":          TypeMatching,
	"heading_paragraph_matching": TypeMatching,
	"paragraph_matching":         TypeMatching,
}

// ParseQuestionType resolves a wire tag to its canonical scorer type.
func ParseQuestionType(tag string) (QuestionType, error) {
	if tag == "" {
		return "", fmt.Errorf("%w: empty tag", ErrUnsupportedType)
	}
	t, ok := typeAliases[tag]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, tag)
	}
	return t, nil
}

// Result is the per-question verdict.
type Result struct {
	QuestionNumber int    `json:"question_number"`
	UserAnswer     string `json:"user_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation,omitempty"`
}

// Summary aggregates a section's results. Score counts correct results;
// Percentage is rounded half away from zero, 0 when TotalScore is 0.
type Summary struct {
	Score      int      `json:"score"`
	TotalScore int      `json:"totalScore"`
	Percentage int      `json:"percentage"`
	Results    []Result `json:"results"`
}
