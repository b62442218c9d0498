package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite 收藏记录，同一用户对同一题目至多一条，取消收藏时物理删除。
type Favorite struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     string    `gorm:"uniqueIndex:idx_user_question;type:varchar(36)" json:"userId"`
	QuestionID string    `gorm:"uniqueIndex:idx_user_question;type:varchar(36)" json:"questionId"`
	Question   *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}

func (Favorite) TableName() string {
	return "favorites"
}
