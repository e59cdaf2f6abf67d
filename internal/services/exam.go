package services

import (
	"lingua-exam-backend/internal/models"

	"gorm.io/gorm"
)

type ExamService struct {
	db *gorm.DB
}

func NewExamService(db *gorm.DB) *ExamService {
	return &ExamService{db: db}
}

type OptionInput struct {
	Letter      string `json:"letter" binding:"required"`
	Text        string `json:"text" binding:"required"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

type QuestionInput struct {
	QuestionNumber int           `json:"question_number" binding:"required"`
	QuestionType   string        `json:"question_type" binding:"required"`
	Text           string        `json:"text" binding:"required"`
	Answer         string        `json:"answer"`
	IsTrue         *bool         `json:"is_true"`
	Explanation    string        `json:"explanation"`
	IsExample      bool          `json:"is_example"`
	Options        []OptionInput `json:"options"`
}

type SectionInput struct {
	Title        string          `json:"title"`
	Instructions string          `json:"instructions"`
	Questions    []QuestionInput `json:"questions"`
}

type ExamInput struct {
	Title    string         `json:"title" binding:"required"`
	Level    string         `json:"level"`
	Skill    string         `json:"skill"`
	Sections []SectionInput `json:"sections"`
}

func (s *ExamService) CreateExam(accountID uint, input ExamInput) (*models.Exam, error) {
	exam := models.Exam{
		AccountID: accountID,
		Title:     input.Title,
		Level:     input.Level,
		Skill:     input.Skill,
	}
	for i, sec := range input.Sections {
		section := models.Section{
			Title:        sec.Title,
			Instructions: sec.Instructions,
			OrderNum:     i,
		}
		for _, q := range sec.Questions {
			question := models.Question{
				QuestionNumber: q.QuestionNumber,
				QuestionType:   q.QuestionType,
				Text:           q.Text,
				Answer:         q.Answer,
				IsTrue:         q.IsTrue,
				Explanation:    q.Explanation,
				IsExample:      q.IsExample,
			}
			for _, o := range q.Options {
				question.Options = append(question.Options, models.Option{
					Letter:      o.Letter,
					Text:        o.Text,
					IsCorrect:   o.IsCorrect,
					Explanation: o.Explanation,
				})
			}
			section.Questions = append(section.Questions, question)
		}
		exam.Sections = append(exam.Sections, section)
	}

	if err := s.db.Create(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (s *ExamService) ListExams(accountID uint) ([]models.Exam, error) {
	var exams []models.Exam
	err := s.db.Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&exams).Error
	return exams, err
}

func (s *ExamService) GetExam(examID, accountID uint) (*models.Exam, error) {
	var exam models.Exam
	err := s.db.Where("id = ? AND account_id = ?", examID, accountID).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Sections.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_number ASC")
		}).
		Preload("Sections.Questions.Options").
		First(&exam).Error
	if err != nil {
		return nil, ErrExamNotFound
	}
	return &exam, nil
}

func (s *ExamService) DeleteExam(examID, accountID uint) error {
	result := s.db.Where("id = ? AND account_id = ?", examID, accountID).Delete(&models.Exam{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExamNotFound
	}
	return nil
}

// GetSectionQuestions loads a section's answer key in question order.
func (s *ExamService) GetSectionQuestions(sectionID uint) ([]models.Question, error) {
	var section models.Section
	if err := s.db.First(&section, sectionID).Error; err != nil {
		return nil, ErrSectionNotFound
	}

	var questions []models.Question
	err := s.db.Where("section_id = ?", sectionID).
		Order("question_number ASC").
		Preload("Options").
		Find(&questions).Error
	return questions, err
}
