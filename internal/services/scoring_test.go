package services

import (
	"context"
	"errors"
	"testing"

	"lingua-exam-backend/internal/evaluator"
	"lingua-exam-backend/internal/models"
	"lingua-exam-backend/internal/scoring"

	"gorm.io/gorm"
)

type cannedEvaluator struct {
	verdict *evaluator.Verdict
	err     error
	called  bool
}

func (c *cannedEvaluator) Evaluate(_ context.Context, _ evaluator.Evaluation) (*evaluator.Verdict, error) {
	c.called = true
	return c.verdict, c.err
}

func seedFillIn(t *testing.T, db *gorm.DB) models.Question {
	t.Helper()
	q := models.Question{
		SectionID:      1,
		QuestionNumber: 1,
		QuestionType:   "fill_in_the_blank",
		Text:           "Das ist ein ___.",
		Answer:         "Hund",
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("failed to create question: %v", err)
	}
	return q
}

func TestScoreQuestion_ExactMatchSkipsEvaluator(t *testing.T) {
	db := testDB(t)
	eval := &cannedEvaluator{}
	s := NewScoringService(db, eval)
	q := seedFillIn(t, db)

	result, err := s.ScoreQuestion(context.Background(), q.ID, "fill_in_the_blank", "Hund")
	if err != nil {
		t.Fatalf("ScoreQuestion returned error: %v", err)
	}
	if !result.IsCorrect {
		t.Error("exact match should be correct")
	}
	if eval.called {
		t.Error("evaluator must not be consulted on an exact match")
	}
}

func TestScoreQuestion_EvaluatorFoldsVerdict(t *testing.T) {
	db := testDB(t)
	eval := &cannedEvaluator{verdict: &evaluator.Verdict{IsCorrect: true, Feedback: "Close enough."}}
	s := NewScoringService(db, eval)
	q := seedFillIn(t, db)

	result, err := s.ScoreQuestion(context.Background(), q.ID, "fill_in_the_blank", "der Hund")
	if err != nil {
		t.Fatalf("ScoreQuestion returned error: %v", err)
	}
	if !eval.called {
		t.Fatal("expected evaluator to be consulted on a mismatch")
	}
	if !result.IsCorrect {
		t.Error("evaluator verdict should override the exact mismatch")
	}
	if result.Explanation != "Close enough." {
		t.Errorf("expected feedback folded into explanation, got %q", result.Explanation)
	}
}

func TestScoreQuestion_EvaluatorFailurePropagates(t *testing.T) {
	db := testDB(t)
	eval := &cannedEvaluator{err: evaluator.ErrUnavailable}
	s := NewScoringService(db, eval)
	q := seedFillIn(t, db)

	_, err := s.ScoreQuestion(context.Background(), q.ID, "fill_in_the_blank", "wrong answer")
	if !errors.Is(err, evaluator.ErrUnavailable) {
		t.Fatalf("a judge failure must surface as an error, got %v", err)
	}
}

func TestScoreQuestion_NoEvaluatorExactOnly(t *testing.T) {
	db := testDB(t)
	s := NewScoringService(db, nil)
	q := seedFillIn(t, db)

	result, err := s.ScoreQuestion(context.Background(), q.ID, "fill_in_the_blank", "der Hund")
	if err != nil {
		t.Fatalf("ScoreQuestion returned error: %v", err)
	}
	if result.IsCorrect {
		t.Error("without an evaluator the mismatch stays wrong")
	}
}

func TestScoreQuestion_UnsupportedTypeRejectedBeforeLookup(t *testing.T) {
	db := testDB(t)
	s := NewScoringService(db, nil)

	_, err := s.ScoreQuestion(context.Background(), 1, "essay_freeform", "text")
	if !errors.Is(err, scoring.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestScoreQuestion_QuestionNotFound(t *testing.T) {
	db := testDB(t)
	s := NewScoringService(db, nil)

	_, err := s.ScoreQuestion(context.Background(), 9999, "multiple_choice", "A")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}
