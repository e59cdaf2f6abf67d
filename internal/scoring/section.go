package scoring

import (
	"math"

	"lingua-exam-backend/internal/models"
)

// ScoreSection folds a batch of answers over a section's answer key.
// Example questions contribute to neither score nor total. Questions with an
// unrecognized type are skipped rather than failing the batch. A question
// with no submitted answer is scored as wrong with an empty submission.
//
// The fold is a pure function: identical inputs produce identical summaries.
func ScoreSection(questions []models.Question, userAnswers map[int]string) Summary {
	summary := Summary{Results: []Result{}}

	for _, q := range questions {
		if q.IsExample {
			continue
		}

		result, err := Score(q, userAnswers[q.QuestionNumber])
		if err != nil {
			continue
		}

		summary.TotalScore++
		if result.IsCorrect {
			summary.Score++
		}
		summary.Results = append(summary.Results, result)
	}

	summary.Percentage = Percentage(summary.Score, summary.TotalScore)
	return summary
}

// Percentage rounds half away from zero and guards the zero-total case.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
