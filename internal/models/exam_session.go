package models

import "time"

type ExamSession struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           string     `gorm:"size:100;not null;index:idx_user_exam" json:"user_id"`
	ExamID           uint       `gorm:"not null;index:idx_user_exam" json:"exam_id"`
	Status           string     `gorm:"size:20;not null;default:'in_progress'" json:"status"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	OverallScore     int        `gorm:"not null;default:0" json:"overall_score"` // percentage
	TotalQuestions   int        `gorm:"not null;default:0" json:"total_questions"`
	CorrectAnswers   int        `gorm:"not null;default:0" json:"correct_answers"`
	TimeSpentSeconds int        `gorm:"not null;default:0" json:"time_spent_seconds"`
	CreatedAt        time.Time  `json:"created_at"`
}

const (
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
)
