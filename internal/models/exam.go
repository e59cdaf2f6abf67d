package models

import "time"

type Exam struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"not null;index" json:"account_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Level     string    `gorm:"size:2" json:"level,omitempty"` // CEFR tag (A1-C2), metadata only
	Skill     string    `gorm:"size:20" json:"skill,omitempty"`
	Sections  []Section `gorm:"foreignKey:ExamID" json:"sections,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
