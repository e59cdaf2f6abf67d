package models

type Question struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	SectionID      uint     `gorm:"not null;index;uniqueIndex:idx_section_number" json:"section_id"`
	QuestionNumber int      `gorm:"not null;uniqueIndex:idx_section_number" json:"question_number"`
	QuestionType   string   `gorm:"size:40;not null" json:"question_type"`
	Text           string   `gorm:"type:text;not null" json:"text"`
	Answer         string   `gorm:"size:500" json:"answer,omitempty"` // key for fill-in-blank/matching
	IsTrue         *bool    `json:"is_true,omitempty"`                // key for true/false
	Explanation    string   `gorm:"type:text" json:"explanation,omitempty"`
	IsExample      bool     `gorm:"not null;default:false" json:"is_example"`
	Options        []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}
