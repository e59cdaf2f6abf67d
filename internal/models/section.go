package models

type Section struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ExamID       uint       `gorm:"not null;index" json:"exam_id"`
	Title        string     `gorm:"size:255" json:"title"`
	Instructions string     `gorm:"type:text" json:"instructions,omitempty"`
	OrderNum     int        `gorm:"not null" json:"order_num"`
	Questions    []Question `gorm:"foreignKey:SectionID" json:"questions,omitempty"`
}
