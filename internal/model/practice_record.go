package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeRecord 练习提交记录，只增不改。
type PracticeRecord struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     string    `gorm:"index;type:varchar(36);not null" json:"userId"`
	QuestionID string    `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Question   *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	UserAnswer JSONValue `json:"userAnswer"`
	IsCorrect  bool      `json:"isCorrect"`
	TimeSpent  int       `gorm:"default:0" json:"timeSpent"` // 答题用时（秒）
}

func (r *PracticeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (PracticeRecord) TableName() string {
	return "practice_records"
}
