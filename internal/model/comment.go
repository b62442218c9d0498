package model

// swagger:model Comment
type Comment struct {
	UUIDBase
	QuestionID string     `gorm:"index;type:varchar(36);not null" json:"questionId"`
	UserID     string     `gorm:"index;type:varchar(36);not null" json:"userId"`
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	ParentID   *string    `gorm:"index;type:varchar(36)" json:"parentId"`
	LikeCount  int        `gorm:"default:0" json:"likeCount"`
	Replies    []*Comment `gorm:"-" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
