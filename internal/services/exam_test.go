package services

import (
	"errors"
	"testing"
)

func sampleExamInput() ExamInput {
	return ExamInput{
		Title: "Listening Test",
		Level: "A2",
		Skill: "listening",
		Sections: []SectionInput{
			{
				Title: "Part 1",
				Questions: []QuestionInput{
					{
						QuestionNumber: 1,
						QuestionType:   "multiple_choice",
						Text:           "Was hören Sie?",
						Options: []OptionInput{
							{Letter: "A", Text: "ein Auto"},
							{Letter: "B", Text: "ein Zug", IsCorrect: true},
						},
					},
					{
						QuestionNumber: 2,
						QuestionType:   "fill_in_the_blank",
						Text:           "Der Zug fährt um ___ Uhr.",
						Answer:         "acht",
					},
				},
			},
		},
	}
}

func TestExamService_CreateAndGet(t *testing.T) {
	db := testDB(t)
	s := NewExamService(db)

	created, err := s.CreateExam(1, sampleExamInput())
	if err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}

	exam, err := s.GetExam(created.ID, 1)
	if err != nil {
		t.Fatalf("GetExam returned error: %v", err)
	}
	if len(exam.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(exam.Sections))
	}
	if len(exam.Sections[0].Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(exam.Sections[0].Questions))
	}
	if len(exam.Sections[0].Questions[0].Options) != 2 {
		t.Errorf("expected 2 options, got %d", len(exam.Sections[0].Questions[0].Options))
	}
}

func TestExamService_GetScopedToAccount(t *testing.T) {
	db := testDB(t)
	s := NewExamService(db)

	created, err := s.CreateExam(1, sampleExamInput())
	if err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}

	if _, err := s.GetExam(created.ID, 2); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound for foreign account, got %v", err)
	}
}

func TestExamService_GetSectionQuestionsOrdered(t *testing.T) {
	db := testDB(t)
	s := NewExamService(db)

	created, err := s.CreateExam(1, sampleExamInput())
	if err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}

	questions, err := s.GetSectionQuestions(created.Sections[0].ID)
	if err != nil {
		t.Fatalf("GetSectionQuestions returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].QuestionNumber != 1 || questions[1].QuestionNumber != 2 {
		t.Error("expected questions in question_number order")
	}
}

func TestExamService_GetSectionQuestionsMissingSection(t *testing.T) {
	db := testDB(t)
	s := NewExamService(db)

	if _, err := s.GetSectionQuestions(777); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestExamService_Delete(t *testing.T) {
	db := testDB(t)
	s := NewExamService(db)

	created, err := s.CreateExam(1, sampleExamInput())
	if err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}

	if err := s.DeleteExam(created.ID, 1); err != nil {
		t.Fatalf("DeleteExam returned error: %v", err)
	}
	if err := s.DeleteExam(created.ID, 1); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound on second delete, got %v", err)
	}
}
