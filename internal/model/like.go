package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeTargetType string

const (
	LikeTargetQuestion LikeTargetType = "question"
	LikeTargetComment  LikeTargetType = "comment"
)

// Like 点赞记录。不支持软删除，取消点赞时物理删除，
// 唯一索引保证同一用户对同一目标至多一条记录。
type Like struct {
	ID         string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UserID     string         `gorm:"uniqueIndex:idx_user_target;type:varchar(36)" json:"userId"`
	TargetID   string         `gorm:"uniqueIndex:idx_user_target;type:varchar(36)" json:"targetId"`
	TargetType LikeTargetType `gorm:"uniqueIndex:idx_user_target;size:20" json:"targetType"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

func (Like) TableName() string {
	return "likes"
}
