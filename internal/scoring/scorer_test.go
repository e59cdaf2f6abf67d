package scoring

import (
	"errors"
	"testing"

	"lingua-exam-backend/internal/models"
)

func choiceQuestion(number int, correctLetter string) models.Question {
	q := models.Question{
		QuestionNumber: number,
		QuestionType:   "multiple_choice",
		Text:           "Pick one",
	}
	for _, letter := range []string{"A", "B", "C", "D"} {
		q.Options = append(q.Options, models.Option{
			Letter:    letter,
			Text:      "Option " + letter,
			IsCorrect: letter == correctLetter,
		})
	}
	return q
}

func boolPtr(b bool) *bool { return &b }

func TestScore_MultipleChoiceCorrectLetter(t *testing.T) {
	q := choiceQuestion(1, "B")

	result, err := Score(q, "B")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected correct letter to score correct")
	}
	if result.CorrectAnswer != "B" {
		t.Errorf("expected correct_answer B, got %q", result.CorrectAnswer)
	}
}

func TestScore_MultipleChoiceEveryOtherLetterWrong(t *testing.T) {
	q := choiceQuestion(1, "B")

	for _, letter := range []string{"A", "C", "D"} {
		result, err := Score(q, letter)
		if err != nil {
			t.Fatalf("Score(%q) returned error: %v", letter, err)
		}
		if result.IsCorrect {
			t.Errorf("letter %q should not score correct", letter)
		}
	}
}

func TestScore_MultipleChoiceCaseSensitive(t *testing.T) {
	q := choiceQuestion(1, "B")

	result, _ := Score(q, "b")
	if result.IsCorrect {
		t.Error("lowercase letter must not match: comparison is exact")
	}
}

func TestScore_MultipleChoiceEmptyAnswerIsWrongNotError(t *testing.T) {
	q := choiceQuestion(1, "A")

	result, err := Score(q, "")
	if err != nil {
		t.Fatalf("empty answer must not error, got %v", err)
	}
	if result.IsCorrect {
		t.Error("empty answer scored correct")
	}
}

func TestScore_MultipleChoiceExplanationPrefersChosenOption(t *testing.T) {
	q := choiceQuestion(1, "B")
	q.Options[0].Explanation = "why A is tempting but wrong"
	q.Options[1].Explanation = "why B is right"

	result, _ := Score(q, "A")
	if result.Explanation != "why A is tempting but wrong" {
		t.Errorf("expected chosen option's explanation, got %q", result.Explanation)
	}
}

func TestScore_MultipleChoiceExplanationFallsBackToCorrectOption(t *testing.T) {
	q := choiceQuestion(1, "B")
	q.Options[1].Explanation = "why B is right"

	result, _ := Score(q, "A")
	if result.Explanation != "why B is right" {
		t.Errorf("expected correct option's explanation, got %q", result.Explanation)
	}
}

func TestScore_TrueFalseMapping(t *testing.T) {
	q := models.Question{
		QuestionNumber: 3,
		QuestionType:   "true_false",
		IsTrue:         boolPtr(true),
	}

	result, err := Score(q, "true")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if !result.IsCorrect {
		t.Error(`"true" should be correct when the key is true`)
	}

	result, _ = Score(q, "false")
	if result.IsCorrect {
		t.Error(`"false" should be wrong when the key is true`)
	}

	q.IsTrue = boolPtr(false)
	result, _ = Score(q, "false")
	if !result.IsCorrect {
		t.Error(`"false" should be correct when the key is false`)
	}
	if result.CorrectAnswer != "false" {
		t.Errorf("expected correct_answer %q, got %q", "false", result.CorrectAnswer)
	}
}

func TestScore_FillInTheBlankExactMatch(t *testing.T) {
	q := models.Question{
		QuestionNumber: 5,
		QuestionType:   "fill_in_the_blank",
		Answer:         "Hund",
	}

	result, _ := Score(q, "Hund")
	if !result.IsCorrect {
		t.Error("exact answer should score correct")
	}

	// No normalization: trailing whitespace and case differences are not forgiven.
	for _, wrong := range []string{"hund", "Hund ", " Hund"} {
		result, _ = Score(q, wrong)
		if result.IsCorrect {
			t.Errorf("%q should not match %q", wrong, q.Answer)
		}
	}
}

func TestScore_MatchingAliasesResolveToSameScorer(t *testing.T) {
	for _, tag := range []string{"matching", "scenario_matching", "heading_paragraph_matching", "paragraph_matching"} {
		q := models.Question{QuestionNumber: 1, QuestionType: tag, Answer: "iii"}

		result, err := Score(q, "iii")
		if err != nil {
			t.Fatalf("tag %q: %v", tag, err)
		}
		if !result.IsCorrect {
			t.Errorf("tag %q: exact match should score correct", tag)
		}
	}
}

func TestScore_UnsupportedTypeRejected(t *testing.T) {
	q := models.Question{QuestionNumber: 1, QuestionType: "essay_freeform"}

	_, err := Score(q, "anything")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestParseQuestionType_EmptyTag(t *testing.T) {
	if _, err := ParseQuestionType(""); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType for empty tag, got %v", err)
	}
}
