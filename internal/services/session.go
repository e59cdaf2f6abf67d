package services

import (
	"errors"
	"log"
	"time"

	"lingua-exam-backend/internal/models"
	"lingua-exam-backend/internal/scoring"

	"gorm.io/gorm"
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

type ResponseInput struct {
	QuestionID       uint   `json:"question_id" binding:"required"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

type BatchResult struct {
	SessionID uint             `json:"session_id"`
	Recorded  int              `json:"recorded"`
	Skipped   int              `json:"skipped"`
	Results   []scoring.Result `json:"results"`
}

// RecordResponses scores and persists a batch of responses. Recording is
// best-effort: an item whose question lookup, scoring, or insert fails is
// logged and skipped, and the rest of the batch still lands.
//
// When no session id is supplied, the learner's in_progress session for the
// exam is reused, or created if absent.
func (s *SessionService) RecordResponses(userID string, examID uint, sessionID *uint, inputs []ResponseInput) (*BatchResult, error) {
	session, err := s.resolveSession(userID, examID, sessionID)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{SessionID: session.ID, Results: []scoring.Result{}}

	for _, input := range inputs {
		var question models.Question
		if err := s.db.Preload("Options").First(&question, input.QuestionID).Error; err != nil {
			log.Printf("session %d: question %d lookup failed, skipping: %v", session.ID, input.QuestionID, err)
			batch.Skipped++
			continue
		}

		result, err := scoring.Score(question, input.Answer)
		if err != nil {
			log.Printf("session %d: question %d not scorable, skipping: %v", session.ID, question.ID, err)
			batch.Skipped++
			continue
		}

		score := 0.0
		if result.IsCorrect {
			score = 1.0
		}
		response := models.Response{
			UserID:           userID,
			QuestionID:       question.ID,
			ResponseText:     input.Answer,
			IsCorrect:        result.IsCorrect,
			Score:            score,
			TimeSpentSeconds: input.TimeSpentSeconds,
			SessionID:        session.ID,
			ExamID:           session.ExamID,
		}
		if err := s.db.Create(&response).Error; err != nil {
			log.Printf("session %d: failed to store response for question %d, skipping: %v", session.ID, question.ID, err)
			batch.Skipped++
			continue
		}

		batch.Recorded++
		batch.Results = append(batch.Results, result)
	}

	return batch, nil
}

func (s *SessionService) resolveSession(userID string, examID uint, sessionID *uint) (*models.ExamSession, error) {
	if sessionID != nil {
		var session models.ExamSession
		if err := s.db.First(&session, *sessionID).Error; err != nil {
			return nil, ErrSessionNotFound
		}
		return &session, nil
	}

	var session models.ExamSession
	err := s.db.Where("user_id = ? AND exam_id = ? AND status = ?",
		userID, examID, models.SessionStatusInProgress).
		First(&session).Error
	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var exam models.Exam
	if err := s.db.First(&exam, examID).Error; err != nil {
		return nil, ErrExamNotFound
	}

	session = models.ExamSession{
		UserID: userID,
		ExamID: examID,
		Status: models.SessionStatusInProgress,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// CompleteSession finalizes a session from whatever responses landed: status
// goes to completed and the aggregates are written once. Example questions
// count toward neither score nor total.
func (s *SessionService) CompleteSession(sessionID uint, userID string) (*models.ExamSession, error) {
	var session models.ExamSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	if userID != "" && session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if session.Status == models.SessionStatusCompleted {
		return nil, ErrSessionCompleted
	}

	var responses []models.Response
	if err := s.db.Where("session_id = ?", sessionID).Find(&responses).Error; err != nil {
		return nil, err
	}

	total := 0
	correct := 0
	timeSpent := 0
	for _, r := range responses {
		timeSpent += r.TimeSpentSeconds

		var question models.Question
		if err := s.db.First(&question, r.QuestionID).Error; err != nil {
			log.Printf("session %d: question %d missing at completion, skipping: %v", sessionID, r.QuestionID, err)
			continue
		}
		if question.IsExample {
			continue
		}

		total++
		if r.IsCorrect {
			correct++
		}
	}

	now := time.Now()
	session.Status = models.SessionStatusCompleted
	session.CompletedAt = &now
	session.OverallScore = scoring.Percentage(correct, total)
	session.TotalQuestions = total
	session.CorrectAnswers = correct
	session.TimeSpentSeconds = timeSpent

	if err := s.db.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) GetSession(sessionID uint) (*models.ExamSession, error) {
	var session models.ExamSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionService) ListSessions(userID string) ([]models.ExamSession, error) {
	var sessions []models.ExamSession
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (s *SessionService) GetSessionResponses(sessionID uint) ([]models.Response, error) {
	if _, err := s.GetSession(sessionID); err != nil {
		return nil, err
	}
	var responses []models.Response
	err := s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&responses).Error
	return responses, err
}
