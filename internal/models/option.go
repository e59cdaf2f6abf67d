package models

type Option struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	QuestionID  uint   `gorm:"not null;index" json:"question_id"`
	Letter      string `gorm:"size:4;not null" json:"letter"`
	Text        string `gorm:"size:500;not null" json:"text"`
	IsCorrect   bool   `gorm:"not null;default:false" json:"is_correct"`
	Explanation string `gorm:"type:text" json:"explanation,omitempty"`
}
