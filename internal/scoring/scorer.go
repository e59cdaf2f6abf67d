package scoring

import (
	"strconv"

	"lingua-exam-backend/internal/models"
)

// Score dispatches a question to its type-specific scorer. The switch is
// exhaustive over QuestionType; adding a constant without a case here is a
// compile-visible gap, not a silently dropped map entry.
func Score(q models.Question, userAnswer string) (Result, error) {
	t, err := ParseQuestionType(q.QuestionType)
	if err != nil {
		return Result{}, err
	}

	switch t {
	case TypeMultipleChoice:
		return scoreMultipleChoice(q, userAnswer), nil
	case TypeTrueFalse:
		return scoreTrueFalse(q, userAnswer), nil
	case TypeFillInTheBlank, TypeMatching:
		return scoreExactText(q, userAnswer), nil
	}
	return Result{}, ErrUnsupportedType
}

// scoreMultipleChoice compares the submitted letter against the option
// flagged correct. Comparison is exact and case-sensitive; an empty
// submission is present-but-wrong, never an error. With no option flagged
// correct (violated seed data) every submission scores wrong.
func scoreMultipleChoice(q models.Question, userAnswer string) Result {
	var correct *models.Option
	var chosen *models.Option
	for i := range q.Options {
		if q.Options[i].IsCorrect && correct == nil {
			correct = &q.Options[i]
		}
		if q.Options[i].Letter == userAnswer {
			chosen = &q.Options[i]
		}
	}

	r := Result{
		QuestionNumber: q.QuestionNumber,
		UserAnswer:     userAnswer,
	}
	if correct != nil {
		r.CorrectAnswer = correct.Letter
		r.IsCorrect = userAnswer == correct.Letter
	}
	r.Explanation = pickExplanation(q, chosen, correct)
	return r
}

// pickExplanation prefers the explanation on the option the learner actually
// chose, then the correct option's, then the question-level one.
func pickExplanation(q models.Question, chosen, correct *models.Option) string {
	if chosen != nil && chosen.Explanation != "" {
		return chosen.Explanation
	}
	if correct != nil && correct.Explanation != "" {
		return correct.Explanation
	}
	return q.Explanation
}

func scoreTrueFalse(q models.Question, userAnswer string) Result {
	correct := ""
	if q.IsTrue != nil {
		correct = strconv.FormatBool(*q.IsTrue)
	}
	return Result{
		QuestionNumber: q.QuestionNumber,
		UserAnswer:     userAnswer,
		CorrectAnswer:  correct,
		IsCorrect:      correct != "" && userAnswer == correct,
		Explanation:    q.Explanation,
	}
}

// scoreExactText covers fill-in-the-blank and matching: exact string match
// against the answer key, no normalization. Semantic (LLM) judgment for
// free-text answers lives above this layer.
func scoreExactText(q models.Question, userAnswer string) Result {
	return Result{
		QuestionNumber: q.QuestionNumber,
		UserAnswer:     userAnswer,
		CorrectAnswer:  q.Answer,
		IsCorrect:      q.Answer != "" && userAnswer == q.Answer,
		Explanation:    q.Explanation,
	}
}
