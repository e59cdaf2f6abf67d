package services

import (
	"context"

	"lingua-exam-backend/internal/evaluator"
	"lingua-exam-backend/internal/models"
	"lingua-exam-backend/internal/scoring"

	"gorm.io/gorm"
)

// ScoringService scores a single question: exact comparison first, with the
// LLM evaluator as the fallback judge for free-text answers. It persists
// nothing; the durable trail is the session service's job.
type ScoringService struct {
	db   *gorm.DB
	eval evaluator.Evaluator // nil when no evaluator is configured
}

func NewScoringService(db *gorm.DB, eval evaluator.Evaluator) *ScoringService {
	return &ScoringService{db: db, eval: eval}
}

// ScoreQuestion routes the question's declared type to its scorer. When the
// caller supplies a type tag it takes precedence over the stored one, so the
// dispatcher rejects unsupported tags before touching any answer key.
func (s *ScoringService) ScoreQuestion(ctx context.Context, questionID uint, typeTag, userAnswer string) (*scoring.Result, error) {
	if typeTag != "" {
		if _, err := scoring.ParseQuestionType(typeTag); err != nil {
			return nil, err
		}
	}

	var question models.Question
	if err := s.db.Preload("Options").First(&question, questionID).Error; err != nil {
		return nil, ErrQuestionNotFound
	}
	if typeTag != "" {
		question.QuestionType = typeTag
	}

	result, err := scoring.Score(question, userAnswer)
	if err != nil {
		return nil, err
	}

	// Exact mismatch on a free-text answer goes to the judge when one is
	// configured. A judge failure propagates; it never becomes a verdict.
	if !result.IsCorrect && s.eval != nil && s.isFreeText(question.QuestionType) && userAnswer != "" {
		verdict, err := s.eval.Evaluate(ctx, evaluator.Evaluation{
			Question:      question.Text,
			CorrectAnswer: question.Answer,
			UserAnswer:    userAnswer,
			Context:       question.Explanation,
		})
		if err != nil {
			return nil, err
		}
		result.IsCorrect = verdict.IsCorrect
		if verdict.Feedback != "" {
			result.Explanation = verdict.Feedback
		}
	}

	return &result, nil
}

func (s *ScoringService) isFreeText(tag string) bool {
	t, err := scoring.ParseQuestionType(tag)
	return err == nil && t == scoring.TypeFillInTheBlank
}
