package models

import "time"

// Response is the durable per-question trail row, one per submitted answer.
type Response struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"size:100;not null;index" json:"user_id"`
	QuestionID       uint      `gorm:"not null;index" json:"question_id"`
	ResponseText     string    `gorm:"type:text" json:"response_text"`
	IsCorrect        bool      `gorm:"not null" json:"is_correct"`
	Score            float64   `gorm:"not null;default:0" json:"score"` // 0|1, or 0..1 from the evaluator
	TimeSpentSeconds int       `gorm:"not null;default:0" json:"time_spent_seconds"`
	SessionID        uint      `gorm:"not null;index" json:"session_id"`
	ExamID           uint      `gorm:"not null;index" json:"exam_id"`
	CreatedAt        time.Time `json:"created_at"`
}
